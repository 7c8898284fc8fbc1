package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/internal/adapters/csvconfig"
	"github.com/adi-segal/mediafix/internal/adapters/tagger"
	"github.com/adi-segal/mediafix/internal/core/services"
	"github.com/adi-segal/mediafix/pkg/config"
	"github.com/adi-segal/mediafix/pkg/ui"
	"github.com/adi-segal/mediafix/pkg/workspace"
)

var (
	// Global workspace and config
	appWorkspace *workspace.Workspace
	appConfig    *config.Config

	// Adapters
	configSource   *csvconfig.Source
	taggerRegistry *tagger.Registry

	// Services
	synthService  *services.SynthesizerService
	seedService   *services.SeedService
	verifyService *services.VerifyService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediafix",
	Short: "Mediafix - fixture seeder for cloud media sync tests",
	Long: ui.StyleTitle.Render("Mediafix") + " - Media Fixture Seeder\n\n" +
		"Seeds local media fixtures for cloud sync test runs: reads a CSV config,\n" +
		"synthesizes files from a template image, and tags each file with its own\n" +
		"relative path so the upload can be verified later.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(etagCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for init command
	if cmd.Name() == "init" {
		return nil
	}

	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = ws

	cfg, err := config.Load(appWorkspace.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(appConfig.ColorTheme)

	// Initialize adapters
	configSource = csvconfig.NewSource()
	taggerRegistry = tagger.NewRegistry()

	// Initialize services
	synthService = services.NewSynthesizerService(taggerRegistry)
	seedService = services.NewSeedService(configSource, synthService)
	verifyService = services.NewVerifyService(configSource, taggerRegistry)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
