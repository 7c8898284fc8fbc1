package cmd

import (
	"testing"

	"github.com/adi-segal/mediafix/internal/adapters/csvconfig"
	"github.com/adi-segal/mediafix/internal/adapters/tagger"
	"github.com/adi-segal/mediafix/internal/core/ports/mocks"
	"github.com/adi-segal/mediafix/internal/core/services"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"seed", "verify", "watch", "etag", "init", "config", "doctor", "version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Errorf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil {
				t.Errorf("Command '%s' is nil", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}

	if rootCmd.Use != "mediafix" {
		t.Errorf("Expected root command Use to be 'mediafix', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Root command Short description is empty")
	}
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()

	if len(commands) == 0 {
		t.Fatal("No commands registered")
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if cmd.Short == "" {
				t.Errorf("Command '%s' has no Short description", cmd.Name())
			}
		})
	}
}

// TestVersionCommandAlias verifies the version command responds to "v"
func TestVersionCommandAlias(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"v"})
	if err != nil {
		t.Fatalf("alias 'v' not found: %v", err)
	}
	if cmd.Name() != "version" {
		t.Errorf("expected alias 'v' to resolve to version, got '%s'", cmd.Name())
	}
}

// TestServiceInitialization verifies services can be initialized with mocks
func TestServiceInitialization(t *testing.T) {
	source := csvconfig.NewSource()
	selector := mocks.NewMockTaggerSelector(mocks.NewMockTagger())

	synth := services.NewSynthesizerService(selector)
	if synth == nil {
		t.Error("SynthesizerService is nil")
	}

	seed := services.NewSeedService(source, synth)
	if seed == nil {
		t.Error("SeedService is nil")
	}

	verify := services.NewVerifyService(source, tagger.NewRegistry())
	if verify == nil {
		t.Error("VerifyService is nil")
	}
}
