package csvconfig

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/adi-segal/mediafix/internal/core/domain"
	"github.com/adi-segal/mediafix/internal/core/ports"
)

// Source opens CSV fixture configs.
type Source struct{}

// NewSource creates a new CSV config source.
func NewSource() *Source {
	return &Source{}
}

// Ensure it implements the interface
var _ ports.ConfigSource = (*Source)(nil)

// Open opens the config at path and consumes its header row.
func (s *Source) Open(path string) (ports.ConfigReader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrConfigNotFound)
		}
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		f.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("%s: empty file: %w", path, domain.ErrMalformedConfig)
		}
		return nil, fmt.Errorf("%s: bad header: %w", path, domain.ErrMalformedConfig)
	}

	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			f.Close()
			return nil, fmt.Errorf("%s: duplicate column %q: %w", path, name, domain.ErrMalformedConfig)
		}
		seen[name] = true
	}

	return &Reader{
		file:   f,
		csv:    cr,
		header: header,
		line:   1,
	}, nil
}

// Reader is a single-pass reader over CSV config rows.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	header []string
	line   int
}

// Next returns the next record, io.EOF at end of file, or a row-level error
// wrapping domain.ErrMalformedConfig. After a row-level error the reader
// remains positioned at the following row.
//
// Record.Line is the physical 1-based line the row starts on, so it stays
// accurate across blank lines and quoted multi-line fields.
func (r *Reader) Next() (*domain.Record, error) {
	row, err := r.csv.Read()

	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		line := r.line + 1
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			line = pe.Line
		}
		r.line = line
		return nil, fmt.Errorf("line %d: %v: %w", line, err, domain.ErrMalformedConfig)
	}

	line, _ := r.csv.FieldPos(0)
	r.line = line

	fields := make(map[string]string, len(r.header))
	for i, name := range r.header {
		fields[name] = row[i]
	}

	return &domain.Record{
		Line:   line,
		Fields: fields,
	}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
