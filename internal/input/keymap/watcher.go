package keymap

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives the freshly loaded keymap after the watched
// file changes, or the error that prevented loading it.
type ReloadFunc func(*Keymap, error)

// Watcher reloads a keymap file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	onLoad  ReloadFunc

	closeCh  chan struct{}
	closedWg sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// Watch starts watching a keymap file. onLoad is called from a
// background goroutine after every write to the file.
func Watch(path string, onLoad ReloadFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors often replace files via rename,
	// which drops a watch placed on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		onLoad:  onLoad,
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops watching. Safe to call multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.closedWg.Wait()
	return err
}

// loop delivers reloads until the watcher is closed.
func (w *Watcher) loop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.onLoad(Load(w.path))
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
