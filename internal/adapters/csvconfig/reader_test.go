package csvconfig

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/adi-segal/mediafix/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestOpen_MissingFile(t *testing.T) {
	src := NewSource()

	_, err := src.Open(filepath.Join(t.TempDir(), "nope.csv"))

	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !errors.Is(err, domain.ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	src := NewSource()
	path := writeConfig(t, "")

	_, err := src.Open(path)

	if !errors.Is(err, domain.ErrMalformedConfig) {
		t.Errorf("expected ErrMalformedConfig for empty file, got %v", err)
	}
}

func TestOpen_DuplicateHeader(t *testing.T) {
	src := NewSource()
	path := writeConfig(t, "asset_rel_path,asset_rel_path\na.jpg,b.jpg\n")

	_, err := src.Open(path)

	if !errors.Is(err, domain.ErrMalformedConfig) {
		t.Errorf("expected ErrMalformedConfig for duplicate column, got %v", err)
	}
}

func TestNext_ReadsRowsInOrder(t *testing.T) {
	src := NewSource()
	path := writeConfig(t, "asset_rel_path,public_id\na/b.jpg,one\nc.jpg,two\n")

	reader, err := src.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reader.Close()

	first, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error on first row: %v", err)
	}
	if first.Fields["asset_rel_path"] != "a/b.jpg" || first.Fields["public_id"] != "one" {
		t.Errorf("unexpected first record fields: %v", first.Fields)
	}
	if first.Line != 2 {
		t.Errorf("expected first record on line 2, got %d", first.Line)
	}

	second, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error on second row: %v", err)
	}
	if second.Fields["asset_rel_path"] != "c.jpg" {
		t.Errorf("unexpected second record fields: %v", second.Fields)
	}

	if _, err := reader.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last row, got %v", err)
	}
}

func TestNext_MalformedRowDoesNotStopTheReader(t *testing.T) {
	src := NewSource()
	path := writeConfig(t, "asset_rel_path,public_id\nonly-one-column\nc.jpg,ok\n")

	reader, err := src.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reader.Close()

	_, err = reader.Next()
	if !errors.Is(err, domain.ErrMalformedConfig) {
		t.Fatalf("expected ErrMalformedConfig for short row, got %v", err)
	}

	rec, err := reader.Next()
	if err != nil {
		t.Fatalf("expected reader to continue past bad row, got %v", err)
	}
	if rec.Fields["asset_rel_path"] != "c.jpg" {
		t.Errorf("unexpected record after bad row: %v", rec.Fields)
	}
}

func TestNext_BlankLinesDoNotSkewLineNumbers(t *testing.T) {
	src := NewSource()
	path := writeConfig(t, "asset_rel_path\na.jpg\n\nb.jpg\n")

	reader, err := src.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reader.Close()

	first, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Line != 2 {
		t.Errorf("expected first record on line 2, got %d", first.Line)
	}

	second, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Line != 4 {
		t.Errorf("expected record after blank line on line 4, got %d", second.Line)
	}
}

func TestNext_MultiLineFieldsDoNotSkewLineNumbers(t *testing.T) {
	src := NewSource()
	path := writeConfig(t, "asset_rel_path,note\na.jpg,\"line one\nline two\"\nb.jpg,x\n")

	reader, err := src.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reader.Close()

	first, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Line != 2 {
		t.Errorf("expected first record on line 2, got %d", first.Line)
	}

	second, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Line != 4 {
		t.Errorf("expected record after multi-line field on line 4, got %d", second.Line)
	}
}

func TestNext_FieldOrderIrrelevant(t *testing.T) {
	src := NewSource()
	path := writeConfig(t, "public_id,asset_rel_path\none,a.jpg\n")

	reader, err := src.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reader.Close()

	rec, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rel, err := rec.AssetRelPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel != "a.jpg" {
		t.Errorf("expected a.jpg, got %q", rel)
	}
}
