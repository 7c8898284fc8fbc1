package domain

import "errors"

// Error taxonomy for the seeding pipeline. Callers classify failures with
// errors.Is; wrapping adds path/line context.
var (
	// ErrConfigNotFound indicates the fixture config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrMalformedConfig indicates a config row that cannot be used, e.g. a
	// column count that differs from the header.
	ErrMalformedConfig = errors.New("malformed config")

	// ErrTemplateNotFound indicates the template media file does not exist.
	ErrTemplateNotFound = errors.New("template file not found")

	// ErrUnsupportedFormat indicates the file format has no metadata facility
	// we can embed a tag into.
	ErrUnsupportedFormat = errors.New("unsupported media format")

	// ErrTagWriteFailed indicates the metadata tag could not be written.
	ErrTagWriteFailed = errors.New("tag write failed")

	// ErrMissingField indicates a record lacks the relative-path field.
	ErrMissingField = errors.New("missing required field")
)
