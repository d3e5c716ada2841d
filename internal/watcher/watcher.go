// Package watcher re-checks a script whenever it is saved.
package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/soni801/go-tatata/internal/util"
)

// FileWatcher watches one script file for changes. The parent directory
// is watched rather than the file itself so editor save strategies that
// replace the file (rename over, truncate and write) are still seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	name    string
	events  chan struct{}
}

// NewFileWatcher starts watching the script file's directory
func NewFileWatcher(path string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		name:    filepath.Base(path),
		events:  make(chan struct{}, 1),
	}
	go fw.processEvents()

	return fw, nil
}

// Events signals once per observed change to the watched file
func (fw *FileWatcher) Events() <-chan struct{} {
	return fw.events
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				close(fw.events)
				return
			}

			if filepath.Base(event.Name) != fw.name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			// Coalesce bursts; a pending signal is enough
			select {
			case fw.events <- struct{}{}:
			default:
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				close(fw.events)
				return
			}
			util.LogError("File watch error: " + err.Error())
		}
	}
}

// Close stops watching
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
