package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rgopan/graha/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute a chart whenever its catalog files change",
	Long: "Watch recomputes and reprints the chart every time the configured yoga\n" +
		"catalog or aspect table file changes. Useful while tuning rule data.",
	RunE: runWatch,
}

func init() {
	addMomentFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var paths []string
	if cfg.YogaCatalog != "" {
		paths = append(paths, cfg.YogaCatalog)
	}
	if cfg.AspectTable != "" {
		paths = append(paths, cfg.AspectTable)
	}
	if len(paths) == 0 {
		return fmt.Errorf("nothing to watch: configure yoga_catalog or aspect_table")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	for _, p := range paths {
		// Watch the directory: editors replace files on save, which drops
		// a direct file watch.
		if err := watcher.Add(filepath.Dir(p)); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		watched[filepath.Clean(p)] = true
	}

	recompute := func() {
		c, err := computeFromFlags(cmd)
		if err != nil {
			log.Error().Err(err).Msg("recompute failed")
			return
		}
		printChart(c)
	}
	recompute()

	// Debounce rapid write bursts from editors.
	const debounce = 200 * time.Millisecond
	var pending *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			log.Debug().Msg("catalog changed; recomputing")
			recompute()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}
