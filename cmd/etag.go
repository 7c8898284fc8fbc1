package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/pkg/checksum"
	"github.com/adi-segal/mediafix/pkg/ui"
)

var etagCmd = &cobra.Command{
	Use:   "etag <file>...",
	Short: "Print MD5 content checksums",
	Long: `Print the MD5 hex digest of each file, one per line.

The digest matches the etag cloud media services report for single-part
uploads, so local fixtures can be compared against remote assets.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEtag,
}

func runEtag(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		sum, err := checksum.File(path)
		if err != nil {
			fmt.Println(ui.FormatWarning(err.Error()))
			failed++
			continue
		}
		fmt.Printf("%s  %s\n", sum, path)
	}

	if failed > 0 {
		return fmt.Errorf("failed to hash %d file(s)", failed)
	}
	return nil
}
