package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mselkit/ganttline/internal/core/model"
	"github.com/mselkit/ganttline/internal/util"
)

// debounceWindow collapses editor write bursts into one reload event.
const debounceWindow = 250 * time.Millisecond

// FileWatcher watches a single CSV file for changes. fsnotify watches the
// containing directory because many editors replace the file on save, which
// drops a watch registered on the file itself.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	events  chan model.FileEvent
	stop    chan struct{}
}

// NewFileWatcher starts watching the directory containing path, emitting an
// event whenever the target file is written, created, or renamed.
func NewFileWatcher(path string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		target:  abs,
		events:  make(chan model.FileEvent, 16),
		stop:    make(chan struct{}),
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	var pending *model.FileEvent
	var timer <-chan time.Time

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != fw.target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			pending = &model.FileEvent{Path: fw.target, Operation: event.Op.String()}
			timer = time.After(debounceWindow)

		case <-timer:
			if pending != nil {
				select {
				case fw.events <- *pending:
				case <-fw.stop:
					return
				}
				pending = nil
			}
			timer = nil

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())

		case <-fw.stop:
			return
		}
	}
}

// Events returns the debounced change event channel.
func (fw *FileWatcher) Events() <-chan model.FileEvent {
	return fw.events
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	close(fw.stop)
	return fw.watcher.Close()
}
