package mocks

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// MockSynthesizer tracks synthesize/tag calls. Synthesize writes a small
// placeholder file so callers that hash the destination keep working.
type MockSynthesizer struct {
	mu sync.Mutex

	// SynthesizeErr and TagErr, when set, fail the respective calls.
	SynthesizeErr error
	TagErr        error

	Synthesized []string          // destination paths, in call order
	Tagged      map[string]string // path -> tag value
}

// NewMockSynthesizer creates a new mock synthesizer.
func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{
		Tagged: make(map[string]string),
	}
}

// Synthesize records the destination path and returns it as absolute.
func (m *MockSynthesizer) Synthesize(ctx context.Context, root, relPath, templatePath string) (string, error) {
	if m.SynthesizeErr != nil {
		return "", m.SynthesizeErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	dest := filepath.Join(root, filepath.FromSlash(relPath))
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, []byte(relPath), 0644); err != nil {
		return "", err
	}
	m.Synthesized = append(m.Synthesized, abs)
	return abs, nil
}

// Tag records the tag value for path.
func (m *MockSynthesizer) Tag(path, value string) error {
	if m.TagErr != nil {
		return m.TagErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tagged[path] = value
	return nil
}
