package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/adi-segal/mediafix/pkg/ui"
)

// confirmAction prompts the user and returns true when they answer "y".
func confirmAction(message string) bool {
	fmt.Print(ui.StyleWarning.Render(message + " (y/N): "))

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.ToLower(strings.TrimSpace(response)) == "y"
}

// pickConfig lets the user fuzzy-pick a CSV config from the current
// directory when no config argument was given.
func pickConfig() (string, error) {
	matches, err := filepath.Glob("*.csv")
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("no config given and no .csv files in the current directory")
	}

	if len(matches) == 1 {
		return matches[0], nil
	}

	idx, err := fuzzyfinder.Find(
		matches,
		func(i int) string { return matches[i] },
	)
	if err != nil {
		return "", fmt.Errorf("no config selected")
	}

	return matches[idx], nil
}

// resolveRoot returns the seed root from the argument or the configured
// default.
func resolveRoot(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if appConfig.DefaultRoot != "" {
		return appConfig.DefaultRoot, nil
	}
	return "", fmt.Errorf("no root folder given (pass one or set default_root in config)")
}

// dirNonEmpty reports whether path is an existing directory with entries.
func dirNonEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}
