package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/adi-segal/mediafix/pkg/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <config.csv> [root]",
	Short: "Re-seed fixtures whenever the config changes",
	Long: `Run a seed batch, then watch the config file and re-run the batch on
every change (debounced by watch_debounce_ms).

Useful while authoring a fixture config: save the CSV, get fresh fixtures.
Press Ctrl+C to stop.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatchConfig,
}

func runWatchConfig(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt)
	defer stop()

	req, err := buildSeedRequest(args)
	if err != nil {
		return err
	}

	runBatch := func() {
		resp, err := seedService.Run(ctx, *req, printOutcome)
		if err != nil {
			fmt.Println(ui.FormatError("Batch failed: " + err.Error()))
			return
		}
		fmt.Println()
		printSeedSummary(resp)
		fmt.Println()
	}

	fmt.Println(ui.FormatRocket("Watching " + req.ConfigPath))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	runBatch()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which would drop
	// a watch on the file itself.
	configDir := filepath.Dir(req.ConfigPath)
	if err := watcher.Add(configDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", configDir, err)
	}

	absConfig, err := filepath.Abs(req.ConfigPath)
	if err != nil {
		return err
	}

	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	var timer *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			fmt.Println(ui.FormatMuted("Watcher stopped."))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != absConfig {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatWarning("Watch error: " + err.Error()))

		case <-rerun:
			fmt.Println(ui.FormatInfo("Config changed, re-seeding..."))
			fmt.Println()
			runBatch()
		}
	}
}
