package ports

import (
	"context"

	"github.com/adi-segal/mediafix/internal/core/domain"
)

// ConfigReader is a lazy, finite, single-pass sequence of config records.
// Next returns io.EOF when the sequence is exhausted. A row-level error
// (wrapping domain.ErrMalformedConfig) leaves the reader usable, so callers
// can skip the bad row and keep going.
type ConfigReader interface {
	Next() (*domain.Record, error)
	Close() error
}

// ConfigSource opens fixture config files.
type ConfigSource interface {
	// Open returns a reader over the config at path.
	// Fails with domain.ErrConfigNotFound if the path does not exist and
	// domain.ErrMalformedConfig if the header row is unusable.
	Open(path string) (ConfigReader, error)
}

// Tagger embeds and recovers a provenance tag in a media file of one format.
type Tagger interface {
	// WriteTag embeds value as a recoverable metadata field in the file.
	WriteTag(path string, value string) error

	// ReadTag returns the embedded tag value, or an error if none is present.
	ReadTag(path string) (string, error)
}

// TaggerSelector picks the tagging strategy for a file. Fails with
// domain.ErrUnsupportedFormat when no tagger handles the file's format.
type TaggerSelector interface {
	ForPath(path string) (Tagger, error)
}

// Synthesizer produces tagged fixture files from a template.
type Synthesizer interface {
	// Synthesize copies the template to root/relPath (creating intermediate
	// directories) and returns the absolute destination path.
	Synthesize(ctx context.Context, root, relPath, templatePath string) (string, error)

	// Tag embeds value into the file at path.
	Tag(path string, value string) error
}
