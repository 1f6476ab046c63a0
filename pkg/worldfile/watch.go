package worldfile

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a world file whenever it changes on disk, an authoring
// convenience: edit the file, see the reloaded definition without
// restarting. The watch is on the containing directory because editors
// commonly replace files by rename.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching path. On every change, the file is reloaded and
// onReload is called with the fresh definition or the load error. onReload
// runs on the watcher goroutine.
func Watch(path string, onReload func(*Definition, error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("worldfile: watch %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("worldfile: watch %s: %w", dir, err)
	}

	w := &Watcher{watcher: fw, done: make(chan struct{})}
	base := filepath.Base(path)

	go func() {
		for {
			select {
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				onReload(Load(path))
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Printf("worldfile: watcher: %v", err)
			case <-w.done:
				return
			}
		}
	}()

	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
