// Package tagger embeds provenance tags into media files as the EXIF
// UserComment field. One tagger per container format; the registry picks a
// tagger by file extension so new formats only need a new strategy.
package tagger

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adi-segal/mediafix/internal/core/domain"
	"github.com/adi-segal/mediafix/internal/core/ports"
)

// Registry maps file extensions to taggers.
type Registry struct {
	taggers map[string]ports.Tagger
}

// NewRegistry creates a registry with the built-in JPEG and PNG taggers.
func NewRegistry() *Registry {
	jpeg := &JpegTagger{}
	png := &PngTagger{}

	return &Registry{
		taggers: map[string]ports.Tagger{
			".jpg":  jpeg,
			".jpeg": jpeg,
			".png":  png,
		},
	}
}

// Ensure it implements the interface
var _ ports.TaggerSelector = (*Registry)(nil)

// ForPath returns the tagger for the file's extension.
func (r *Registry) ForPath(path string) (ports.Tagger, error) {
	ext := strings.ToLower(filepath.Ext(path))
	t, ok := r.taggers[ext]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}
	return t, nil
}

// Extensions returns the supported extensions, for diagnostics.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.taggers))
	for ext := range r.taggers {
		exts = append(exts, ext)
	}
	return exts
}
