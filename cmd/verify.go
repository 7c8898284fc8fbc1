package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/internal/core/services"
	"github.com/adi-segal/mediafix/pkg/ui"
)

var verifyWorkers int

var verifyCmd = &cobra.Command{
	Use:   "verify <config.csv> [root]",
	Short: "Check that seeded fixtures carry their own path as a tag",
	Long: `Re-read every fixture named by the config and compare its embedded
EXIF UserComment against the row's relative path.

Fixtures are independent, so verification runs on a small worker pool.

Examples:
  mediafix verify fixtures.csv ./out
  mediafix verify fixtures.csv ./out --workers 8`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVarP(&verifyWorkers, "workers", "w", 0, "Concurrent verification workers (default: max_workers from config)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var rootArg string
	if len(args) > 1 {
		rootArg = args[1]
	}
	root, err := resolveRoot(rootArg)
	if err != nil {
		return err
	}

	workers := verifyWorkers
	if workers <= 0 {
		workers = appConfig.MaxWorkers
	}

	resp, err := verifyService.Run(ctx, services.VerifyRequest{
		ConfigPath: args[0],
		RootDir:    root,
		MaxWorkers: workers,
	})
	if err != nil {
		return err
	}

	for _, r := range resp.Results {
		if r.OK() {
			fmt.Println(ui.FormatSuccess(r.AbsPath))
		}
	}

	if resp.Failed > 0 {
		fmt.Println()
		table := ui.NewTable([]ui.TableColumn{
			{Header: "LINE"},
			{Header: "PATH"},
			{Header: "PROBLEM"},
		})
		for _, r := range resp.Results {
			if r.OK() {
				continue
			}
			table.AddRow([]string{
				fmt.Sprintf("%d", r.Line),
				r.RelPath,
				r.Err.Error(),
			})
		}
		fmt.Print(table.Render())
	}

	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Checked", fmt.Sprintf("%d", resp.Total)))
	fmt.Println(ui.RenderKeyValue("Passed", fmt.Sprintf("%d", resp.Passed)))
	fmt.Println(ui.RenderKeyValue("Failed", fmt.Sprintf("%d", resp.Failed)))

	if resp.Failed > 0 {
		return fmt.Errorf("%d fixture(s) failed verification", resp.Failed)
	}

	fmt.Println()
	fmt.Println(ui.FormatSuccess("All fixtures verified!"))
	return nil
}
