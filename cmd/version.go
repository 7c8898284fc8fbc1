package cmd

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/pkg/ui"
)

// Version information - these can be set during build with ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display version information",
	Aliases: []string{"v"},
	Long:    `Display the mediafix version, build details and supported fixture formats. (alias: v)`,
	Run:     runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(ui.StyleTitle.Render("Mediafix") + " - Media Fixture Seeder")
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Version", Version))
	fmt.Println(ui.RenderKeyValue("Commit", GitCommit))
	fmt.Println(ui.RenderKeyValue("Built", BuildDate))
	fmt.Println(ui.RenderKeyValue("Go", runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH))

	exts := taggerRegistry.Extensions()
	sort.Strings(exts)
	fmt.Println(ui.RenderKeyValue("Formats", strings.Join(exts, " ")))
	fmt.Println(ui.RenderKeyValue("Templates", appWorkspace.TemplatesPath))
}
