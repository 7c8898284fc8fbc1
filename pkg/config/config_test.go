package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.TemplatePath != "" {
		t.Errorf("expected default TemplatePath='', got %q", cfg.TemplatePath)
	}

	if cfg.MaxWorkers != 4 {
		t.Errorf("expected default MaxWorkers=4, got %d", cfg.MaxWorkers)
	}

	if cfg.WatchDebounceMS != 500 {
		t.Errorf("expected default WatchDebounceMS=500, got %d", cfg.WatchDebounceMS)
	}

	if cfg.SkipExisting {
		t.Error("expected SkipExisting to default to false")
	}

	if cfg.ColorTheme != "auto" {
		t.Errorf("expected default ColorTheme='auto', got %q", cfg.ColorTheme)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/config.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.MaxWorkers != 4 {
		t.Errorf("expected default MaxWorkers=4, got %d", cfg.MaxWorkers)
	}
}

func TestSave_And_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	cfg := &Config{
		TemplatePath:    "/opt/fixtures/template.jpg",
		DefaultRoot:     "./out",
		MaxWorkers:      8,
		WatchDebounceMS: 250,
		SkipExisting:    true,
		ColorTheme:      "dark",
	}

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.TemplatePath != cfg.TemplatePath {
		t.Errorf("TemplatePath mismatch: %q vs %q", loaded.TemplatePath, cfg.TemplatePath)
	}
	if loaded.DefaultRoot != cfg.DefaultRoot {
		t.Errorf("DefaultRoot mismatch: %q vs %q", loaded.DefaultRoot, cfg.DefaultRoot)
	}
	if loaded.MaxWorkers != 8 {
		t.Errorf("expected MaxWorkers=8, got %d", loaded.MaxWorkers)
	}
	if loaded.WatchDebounceMS != 250 {
		t.Errorf("expected WatchDebounceMS=250, got %d", loaded.WatchDebounceMS)
	}
	if !loaded.SkipExisting {
		t.Error("expected SkipExisting=true")
	}
}

func TestLoad_BackfillsZeroValues(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	content := "max_workers: 0\nwatch_debounce_ms: 0\ncolor_theme: \"\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.MaxWorkers != 4 {
		t.Errorf("expected MaxWorkers backfilled to 4, got %d", cfg.MaxWorkers)
	}
	if cfg.WatchDebounceMS != 500 {
		t.Errorf("expected WatchDebounceMS backfilled to 500, got %d", cfg.WatchDebounceMS)
	}
	if cfg.ColorTheme != "auto" {
		t.Errorf("expected ColorTheme backfilled to 'auto', got %q", cfg.ColorTheme)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("max_workers: [not an int\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
