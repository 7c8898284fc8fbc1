package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/internal/core/domain"
	"github.com/adi-segal/mediafix/internal/core/services"
	"github.com/adi-segal/mediafix/pkg/ui"
)

var (
	seedTemplate     string
	seedYes          bool
	seedSkipExisting bool
)

var seedCmd = &cobra.Command{
	Use:   "seed [config.csv] [root]",
	Short: "Synthesize tagged fixtures from a CSV config",
	Long: `Read a CSV config and create one media fixture per row.

Each row's ` + domain.FieldAssetRelPath + ` column names a destination relative to the
root folder. The template image is copied there and tagged with the relative
path as its EXIF UserComment, so a later 'mediafix verify' (or the sync test
itself) can check provenance without the config.

Existing destinations are overwritten unless --skip-existing is set. A bad
row never aborts the batch; it is logged and the run continues.

Examples:
  mediafix seed fixtures.csv ./out
  mediafix seed fixtures.csv ./out --template ./custom.jpg
  mediafix seed                       # pick a .csv from the current directory`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedTemplate, "template", "t", "", "Template image to copy (default: configured template)")
	seedCmd.Flags().BoolVarP(&seedYes, "yes", "y", false, "Do not prompt before overwriting a non-empty root")
	seedCmd.Flags().BoolVar(&seedSkipExisting, "skip-existing", false, "Leave existing destination files untouched")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	req, err := buildSeedRequest(args)
	if err != nil {
		return err
	}

	if !req.SkipExisting && !seedYes && dirNonEmpty(req.RootDir) {
		if !confirmAction(fmt.Sprintf("Root %s is not empty; existing fixtures will be overwritten. Continue?", req.RootDir)) {
			fmt.Println(ui.FormatMuted("Aborted."))
			return nil
		}
	}

	fmt.Println(ui.FormatRocket(fmt.Sprintf("Seeding fixtures from %s into %s", req.ConfigPath, req.RootDir)))
	fmt.Println(ui.FormatMuted("Template: " + req.TemplatePath))
	fmt.Println()

	resp, err := seedService.Run(ctx, *req, printOutcome)
	if err != nil {
		return err
	}

	fmt.Println()
	printSeedSummary(resp)
	return nil
}

// buildSeedRequest resolves config path, root and template from args, flags
// and the tool config.
func buildSeedRequest(args []string) (*services.SeedRequest, error) {
	var configPath string
	var err error
	if len(args) > 0 {
		configPath = args[0]
	} else {
		configPath, err = pickConfig()
		if err != nil {
			return nil, err
		}
	}

	var rootArg string
	if len(args) > 1 {
		rootArg = args[1]
	}
	root, err := resolveRoot(rootArg)
	if err != nil {
		return nil, err
	}

	override := seedTemplate
	if override == "" {
		override = appConfig.TemplatePath
	}
	templatePath, err := appWorkspace.ResolveTemplate(override)
	if err != nil {
		return nil, err
	}

	return &services.SeedRequest{
		ConfigPath:   configPath,
		RootDir:      root,
		TemplatePath: templatePath,
		SkipExisting: seedSkipExisting || appConfig.SkipExisting,
	}, nil
}

// printOutcome logs one line per record: checksum and absolute path on
// success, the captured error on failure.
func printOutcome(out domain.Outcome) {
	switch {
	case out.Err != nil:
		fmt.Println(ui.FormatWarning(describeFailure(out)))
	case out.Skipped:
		fmt.Println(ui.FormatSkip(out.AbsPath + " (exists)"))
	default:
		fmt.Println(ui.FormatSuccess(out.Checksum + "  " + out.AbsPath))
	}
}

func describeFailure(out domain.Outcome) string {
	if out.Line > 0 {
		return fmt.Sprintf("line %d: %v", out.Line, out.Err)
	}
	return out.Err.Error()
}

func printSeedSummary(resp *services.SeedResponse) {
	fmt.Println(ui.RenderKeyValue("Total", fmt.Sprintf("%d", resp.Total)))
	fmt.Println(ui.RenderKeyValue("Created", fmt.Sprintf("%d", resp.Succeeded)))
	if resp.Skipped > 0 {
		fmt.Println(ui.RenderKeyValue("Skipped", fmt.Sprintf("%d", resp.Skipped)))
	}
	fmt.Println(ui.RenderKeyValue("Failed", fmt.Sprintf("%d", resp.Failed)))

	if resp.Failed == 0 {
		fmt.Println()
		fmt.Println(ui.FormatSuccess("Seeding complete!"))
	} else {
		fmt.Println()
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Seeding finished with %d failed record(s)", resp.Failed)))
	}
}
