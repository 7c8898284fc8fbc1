package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the mediafix configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appWorkspace.ConfigPath

		// Ensure it exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config file not found at %s (run 'mediafix init')", path)
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.FormatTitle("Configuration"))
		fmt.Println(ui.FormatMuted(appWorkspace.ConfigPath))
		fmt.Println()
		fmt.Println(ui.RenderKeyValue("template_path", appConfig.TemplatePath))
		fmt.Println(ui.RenderKeyValue("default_root", appConfig.DefaultRoot))
		fmt.Println(ui.RenderKeyValue("max_workers", fmt.Sprintf("%d", appConfig.MaxWorkers)))
		fmt.Println(ui.RenderKeyValue("watch_debounce_ms", fmt.Sprintf("%d", appConfig.WatchDebounceMS)))
		fmt.Println(ui.RenderKeyValue("skip_existing", fmt.Sprintf("%t", appConfig.SkipExisting)))
		fmt.Println(ui.RenderKeyValue("color_theme", appConfig.ColorTheme))
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
}
