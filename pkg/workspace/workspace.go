// Package workspace resolves where mediafix keeps its config and bundled
// template assets.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adi-segal/mediafix/internal/core/domain"
)

// DefaultTemplateName is the template filename looked up when the config
// does not name one.
const DefaultTemplateName = "template.jpg"

// Workspace holds the resolved paths for this installation.
type Workspace struct {
	// TemplatesPath is the user template directory under the data root.
	TemplatesPath string

	// ConfigPath is the YAML config file location.
	ConfigPath string
}

// New creates a Workspace with XDG-compliant paths.
func New() (*Workspace, error) {
	dataRoot, dataErr := getDataRoot()
	configPath, configErr := getConfigPath()
	if dataErr != nil {
		return nil, fmt.Errorf("failed to determine data directory: %w", dataErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Workspace{
		TemplatesPath: filepath.Join(dataRoot, "templates"),
		ConfigPath:    configPath,
	}, nil
}

// getDataRoot returns the data directory path.
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getDataRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "mediafix"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "mediafix"), nil
	}

	return filepath.Join(homeDir, ".local", "share", "mediafix"), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "mediafix", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "mediafix-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "mediafix", "config.yaml"), nil
}

// Initialize creates the workspace directories if they don't exist.
func (w *Workspace) Initialize() error {
	dirs := []string{
		w.TemplatesPath,
		filepath.Dir(w.ConfigPath),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ResolveTemplate returns the template image path for a run. Precedence:
// the explicit override (flag or config), then the user template directory,
// then a templates/ directory next to the executable (the install location).
func (w *Workspace) ResolveTemplate(override string) (string, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%s: %w", override, domain.ErrTemplateNotFound)
			}
			return "", fmt.Errorf("failed to stat template: %w", err)
		}
		return override, nil
	}

	candidates := []string{
		filepath.Join(w.TemplatesPath, DefaultTemplateName),
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "templates", DefaultTemplateName))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}

	return "", fmt.Errorf("no %s found in %s (set template_path or pass --template): %w",
		DefaultTemplateName, w.TemplatesPath, domain.ErrTemplateNotFound)
}
