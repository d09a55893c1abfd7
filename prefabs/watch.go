package prefabs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changed character and script files on Events. A file is
// reported once writes to the watched directories have been quiet for
// watchDebounce, so a burst of writes yields one event after the last one.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs. The scripts subdirectory of each dir is watched
// too when it exists.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
		if info, err := os.Stat(filepath.Join(dir, "scripts")); err == nil && info.IsDir() {
			if err := w.Add(filepath.Join(dir, "scripts")); err != nil {
				_ = w.Close()
				return nil, err
			}
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// watchDebounce is how long a file must stay quiet before it is reported.
const watchDebounce = 100 * time.Millisecond

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]struct{})
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	var quiet <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(watchDebounce)
			quiet = timer.C
		case <-quiet:
			quiet = nil
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			clear(pending)
			for _, name := range names {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			timer.Stop()
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tengo"
}
