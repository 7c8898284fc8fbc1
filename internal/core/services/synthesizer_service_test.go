package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adi-segal/mediafix/internal/core/domain"
	"github.com/adi-segal/mediafix/internal/core/ports/mocks"
)

func writeTemplate(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.jpg")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	return path
}

func TestSynthesize_CreatesFileAndParentDirs(t *testing.T) {
	tagger := mocks.NewMockTagger()
	svc := NewSynthesizerService(mocks.NewMockTaggerSelector(tagger))

	content := []byte("fake image content")
	template := writeTemplate(t, content)
	root := t.TempDir()

	abs, err := svc.Synthesize(context.Background(), root, "nested/dir/b.jpg", template)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, _ := filepath.Abs(filepath.Join(root, "nested", "dir", "b.jpg"))
	if abs != want {
		t.Errorf("expected destination %s, got %s", want, abs)
	}

	got, err := os.ReadFile(abs)
	if err != nil {
		t.Fatalf("failed to read synthesized file: %v", err)
	}
	if string(got) != string(content) {
		t.Error("synthesized content doesn't match template")
	}
}

func TestSynthesize_MissingTemplate(t *testing.T) {
	svc := NewSynthesizerService(mocks.NewMockTaggerSelector(mocks.NewMockTagger()))
	root := t.TempDir()

	_, err := svc.Synthesize(context.Background(), root, "a.jpg", filepath.Join(t.TempDir(), "missing.jpg"))

	if !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}

	// No destination file may exist after the failure
	if _, err := os.Stat(filepath.Join(root, "a.jpg")); !os.IsNotExist(err) {
		t.Error("expected no file to be created for a missing template")
	}
}

func TestSynthesize_OverwritesExistingDestination(t *testing.T) {
	svc := NewSynthesizerService(mocks.NewMockTaggerSelector(mocks.NewMockTagger()))

	template := writeTemplate(t, []byte("new content"))
	root := t.TempDir()

	dest := filepath.Join(root, "a.jpg")
	if err := os.WriteFile(dest, []byte("stale content"), 0644); err != nil {
		t.Fatalf("failed to pre-create destination: %v", err)
	}

	abs, err := svc.Synthesize(context.Background(), root, "a.jpg", template)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := os.ReadFile(abs)
	if string(got) != "new content" {
		t.Errorf("expected destination to be overwritten, got %q", got)
	}
}

func TestTag_DelegatesToSelectedTagger(t *testing.T) {
	tagger := mocks.NewMockTagger()
	svc := NewSynthesizerService(mocks.NewMockTaggerSelector(tagger))

	if err := svc.Tag("/tmp/a.jpg", "a.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := tagger.ReadTag("/tmp/a.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "a.jpg" {
		t.Errorf("expected tag a.jpg, got %q", v)
	}
}

func TestTag_UnsupportedFormat(t *testing.T) {
	selector := mocks.NewMockTaggerSelector(mocks.NewMockTagger())
	selector.Extensions = []string{".jpg"}
	svc := NewSynthesizerService(selector)

	err := svc.Tag("/tmp/a.gif", "a.gif")

	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
