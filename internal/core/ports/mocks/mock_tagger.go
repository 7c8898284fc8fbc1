package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/adi-segal/mediafix/internal/core/domain"
	"github.com/adi-segal/mediafix/internal/core/ports"
)

// MockTagger records tags in memory instead of touching file metadata.
type MockTagger struct {
	mu   sync.Mutex
	tags map[string]string

	// WriteErr, when set, is returned from every WriteTag call.
	WriteErr error
}

// NewMockTagger creates a new in-memory tagger.
func NewMockTagger() *MockTagger {
	return &MockTagger{
		tags: make(map[string]string),
	}
}

// WriteTag stores the tag value for path.
func (m *MockTagger) WriteTag(path, value string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tags[path] = value
	return nil
}

// ReadTag returns the stored tag value for path.
func (m *MockTagger) ReadTag(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.tags[path]
	if !ok {
		return "", fmt.Errorf("no tag recorded for %s", path)
	}
	return v, nil
}

// Tags returns a copy of all recorded tags.
func (m *MockTagger) Tags() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]string, len(m.tags))
	for k, v := range m.tags {
		out[k] = v
	}
	return out
}

// MockTaggerSelector returns a fixed tagger for a set of extensions.
type MockTaggerSelector struct {
	Tagger     ports.Tagger
	Extensions []string
}

// NewMockTaggerSelector creates a selector that accepts every path.
func NewMockTaggerSelector(t ports.Tagger) *MockTaggerSelector {
	return &MockTaggerSelector{Tagger: t}
}

// ForPath returns the configured tagger, or domain.ErrUnsupportedFormat when
// an extension allow-list is set and the path does not match.
func (m *MockTaggerSelector) ForPath(path string) (ports.Tagger, error) {
	if len(m.Extensions) == 0 {
		return m.Tagger, nil
	}
	for _, ext := range m.Extensions {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return m.Tagger, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
}
