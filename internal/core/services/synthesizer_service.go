package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adi-segal/mediafix/internal/core/domain"
	"github.com/adi-segal/mediafix/internal/core/ports"
)

// SynthesizerService produces fixture files by copying a template and
// embedding a provenance tag through a format-specific tagger.
type SynthesizerService struct {
	taggers ports.TaggerSelector
}

// NewSynthesizerService creates a new synthesizer service.
func NewSynthesizerService(taggers ports.TaggerSelector) *SynthesizerService {
	return &SynthesizerService{
		taggers: taggers,
	}
}

// Ensure it implements the interface
var _ ports.Synthesizer = (*SynthesizerService)(nil)

// Synthesize copies the template to root/relPath and returns the absolute
// destination path. Intermediate directories are created. An existing
// destination is overwritten: fixture roots are owned by the seed run and
// re-seeding must converge on the config.
func (s *SynthesizerService) Synthesize(ctx context.Context, root, relPath, templatePath string) (string, error) {
	src, err := os.Open(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", templatePath, domain.ErrTemplateNotFound)
		}
		return "", fmt.Errorf("failed to open template: %w", err)
	}
	defer src.Close()

	dest := filepath.Join(root, filepath.FromSlash(relPath))
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dest, err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("failed to create parent directories: %w", err)
	}

	dst, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", abs, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(abs)
		return "", fmt.Errorf("failed to copy template to %s: %w", abs, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", abs, err)
	}

	return abs, nil
}

// Tag embeds value into the file at path using the tagger for its format.
func (s *SynthesizerService) Tag(path, value string) error {
	t, err := s.taggers.ForPath(path)
	if err != nil {
		return err
	}
	return t.WriteTag(path, value)
}
