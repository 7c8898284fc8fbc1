package domain

import (
	"fmt"
	"strings"
)

// FieldAssetRelPath is the config column holding the destination path of a
// fixture, relative to the seed root. Paths use forward slashes regardless
// of platform.
const FieldAssetRelPath = "asset_rel_path"

// Record is one row of the fixture config: a mapping from column name to
// string value. Records are immutable once produced by the config reader.
type Record struct {
	// Line is the 1-based line number of the row in the config file.
	Line int

	Fields map[string]string
}

// AssetRelPath returns the relative destination path for this record.
// Returns ErrMissingField when the column is absent or empty.
func (r Record) AssetRelPath() (string, error) {
	v, ok := r.Fields[FieldAssetRelPath]
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("line %d: %q: %w", r.Line, FieldAssetRelPath, ErrMissingField)
	}
	return v, nil
}
