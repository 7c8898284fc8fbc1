package domain

// Outcome is the result of seeding a single record. Outcomes are reported in
// config order; a failed record carries its error and never aborts the batch.
type Outcome struct {
	// Line is the config line the record came from (0 when the row could not
	// be parsed at all; the error text then carries the line number).
	Line int

	// RelPath is the record's relative destination path, when known.
	RelPath string

	// AbsPath is the absolute path of the synthesized file on success.
	AbsPath string

	// Checksum is the MD5 hex digest of the synthesized file on success.
	Checksum string

	// Skipped is set when the destination already existed and the run was
	// asked to leave existing files alone.
	Skipped bool

	Err error
}

// OK reports whether the record was seeded (or deliberately skipped).
func (o Outcome) OK() bool {
	return o.Err == nil
}
