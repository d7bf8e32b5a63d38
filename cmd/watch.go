package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/user/esg-auditor/pkg/config"
	"github.com/user/esg-auditor/pkg/engine"
)

var (
	watchRosterPath string
	watchOutDir     string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the audit whenever the roster file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine.DebugEnabled = DebugMode

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watch init failed: %w", err)
		}
		defer watcher.Close()

		// Watch the directory: editors replace files on save, which would
		// drop a watch set on the file itself.
		rosterDir := filepath.Dir(watchRosterPath)
		rosterName := filepath.Base(watchRosterPath)
		if err := watcher.Add(rosterDir); err != nil {
			return fmt.Errorf("watch failed: %w", err)
		}

		run := func() {
			if err := runAudit(cfg, watchRosterPath, watchOutDir, true); err != nil {
				fmt.Printf("[Watch] Audit failed: %v\n", err)
			}
		}

		fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", watchRosterPath)
		run()

		var timer *time.Timer
		debounce := 300 * time.Millisecond
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != rosterName {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					fmt.Printf("\n[Watch] Roster changed, re-auditing...\n")
					run()
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Printf("[Watch] Error: %v\n", err)
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchRosterPath, "roster", "r", "proveedores.csv", "Provider roster CSV")
	watchCmd.Flags().StringVarP(&watchOutDir, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(watchCmd)
}
