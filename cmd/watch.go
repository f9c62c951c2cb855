package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/adaedra/pastex/internal/logging"
)

// WatchCmd renders a source file, then re-renders it on every write
// until interrupted. The source's directory is watched rather than the
// file itself, since most editors replace files on save.
type WatchCmd struct {
	// Source is the path of the document to watch.
	Source string `arg:"" help:"Source document" type:"path"`
	// Output is the explicit output file path.
	Output string `help:"Output file path" short:"o" type:"path"`
}

// Run executes the watch command. It blocks until the process is
// interrupted.
func (c *WatchCmd) Run() error {
	fs := afero.NewOsFs()
	build := &BuildCmd{Source: c.Source, Output: c.Output}

	if err := build.run(fs); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(c.Source)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	source, err := filepath.Abs(c.Source)
	if err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			name, err := filepath.Abs(event.Name)
			if err != nil || name != source {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			logging.Debugf("change detected: %s", event.Name)

			// A failed rebuild keeps the watch alive; the next save
			// gets another chance.
			if err := build.run(fs); err != nil {
				diagError(err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			diagError(err.Error())
		}
	}
}
