package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/pkg/config"
	"github.com/adi-segal/mediafix/pkg/ui"
	"github.com/adi-segal/mediafix/pkg/workspace"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the mediafix workspace",
	Long: `Initialize the mediafix workspace.

This creates:
  - the template directory (~/.local/share/mediafix/templates/)
  - a default config file (~/.config/mediafix/config.yaml)

Drop a template.jpg into the template directory (or set template_path in the
config) and you are ready to seed.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := workspace.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine workspace location"))
		return err
	}

	fmt.Println(ui.FormatRocket("Initializing mediafix workspace..."))
	fmt.Println()

	if err := ws.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize workspace"))
		return err
	}

	// Write a default config unless one already exists
	if _, err := os.Stat(ws.ConfigPath); os.IsNotExist(err) {
		if err := config.DefaultConfig().Save(ws.ConfigPath); err != nil {
			fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
			// Don't fail - config is optional
		} else {
			fmt.Println(ui.FormatSuccess("Default config created"))
		}
	} else {
		fmt.Println(ui.FormatWarning("Config already exists, leaving it alone"))
	}

	fmt.Println(ui.FormatSuccess("Workspace initialized!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Templates", ws.TemplatesPath))
	fmt.Println(ui.RenderKeyValue("Config", ws.ConfigPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. Copy a template image: cp my-image.jpg " + ws.TemplatesPath + "/" + workspace.DefaultTemplateName))
	fmt.Println(ui.FormatMuted("  2. Write a fixture config with an asset_rel_path column"))
	fmt.Println(ui.FormatMuted("  3. Seed: mediafix seed fixtures.csv ./out"))

	return nil
}
