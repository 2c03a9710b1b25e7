package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settleDelay = 200 * time.Millisecond

// watch renders again each time one of the data files or the configuration
// file is written. Directories are watched since editors often replace files
// instead of writing them.
func (o renderOptions) watch(ctx context.Context, files []string, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	var (
		names   = make(map[string]struct{})
		watched = slices.Clone(files)
	)
	if o.Config != "" {
		watched = append(watched, o.Config)
	}
	for _, f := range watched {
		f, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		names[f] = struct{}{}
		if err := w.Add(filepath.Dir(f)); err != nil {
			return err
		}
	}
	logger.Info("watching for changes", "files", len(names))

	timer := time.NewTimer(settleDelay)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
				continue
			}
			if _, ok := names[filepath.Clean(e.Name)]; !ok {
				continue
			}
			logger.Debug("file changed", "file", e.Name, "op", e.Op.String())
			timer.Reset(settleDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		case <-timer.C:
			if err := o.render(ctx, files, logger); err != nil {
				logger.Error("render failed", "err", err)
				continue
			}
			logger.Info("plot rendered", "outputs", len(o.Outputs))
		}
	}
}
