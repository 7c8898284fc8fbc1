package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your mediafix setup",
	Long: `Diagnose issues with your mediafix setup.

Checks for:
  - Configuration file existence
  - Template image presence and format support
  - Default root writability`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("Mediafix Doctor"))
	fmt.Println()

	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appWorkspace.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (run 'mediafix init')", appWorkspace.ConfigPath)
		}
		return nil
	})

	checkStep("Template Directory", func() error {
		if _, err := os.Stat(appWorkspace.TemplatesPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appWorkspace.TemplatesPath)
		}
		return nil
	})

	var templatePath string
	checkStep("Template Image", func() error {
		p, err := appWorkspace.ResolveTemplate(appConfig.TemplatePath)
		if err != nil {
			return err
		}
		templatePath = p
		return nil
	})

	checkStep("Template Format", func() error {
		if templatePath == "" {
			return fmt.Errorf("skipped (no template found)")
		}
		if _, err := taggerRegistry.ForPath(templatePath); err != nil {
			exts := taggerRegistry.Extensions()
			sort.Strings(exts)
			return fmt.Errorf("%s is not taggable (supported: %v)", filepath.Ext(templatePath), exts)
		}
		return nil
	})

	if appConfig.DefaultRoot != "" {
		checkStep("Default Root", func() error {
			probe := filepath.Join(appConfig.DefaultRoot, ".mediafix-probe")
			if err := os.MkdirAll(appConfig.DefaultRoot, 0755); err != nil {
				return fmt.Errorf("cannot create %s", appConfig.DefaultRoot)
			}
			if err := os.WriteFile(probe, []byte{}, 0644); err != nil {
				return fmt.Errorf("not writable: %s", appConfig.DefaultRoot)
			}
			os.Remove(probe)
			return nil
		})
	}

	checkStep("EDITOR Variable", func() error {
		if os.Getenv("EDITOR") == "" {
			return fmt.Errorf("not set (using fallback 'vi' for 'mediafix config')")
		}
		return nil
	})
}

// checkStep runs a single diagnostic and prints a pass/fail line.
func checkStep(name string, check func() error) {
	if err := check(); err != nil {
		fmt.Printf("%s %s: %s\n", ui.StyleError.Render(ui.IconError), name, err.Error())
		return
	}
	fmt.Printf("%s %s\n", ui.StyleSuccess.Render(ui.IconSuccess), name)
}
