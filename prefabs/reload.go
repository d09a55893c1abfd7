package prefabs

import (
	"path/filepath"
	"sync"

	"github.com/milk9111/brawler/character"
	"go.uber.org/zap"
)

// Reloader rebuilds character definitions when their files change on disk.
// Rebuilt definitions wait in Poll until the game swaps them in between ticks.
type Reloader struct {
	watcher *Watcher
	logger  *zap.Logger
	names   []string

	mu      sync.Mutex
	pending map[string]*character.Definition
	done    chan struct{}
}

// NewReloader watches the prefab directory for changes to names and to any
// requirement script.
func NewReloader(logger *zap.Logger, names ...string) (*Reloader, error) {
	w, err := NewWatcher(Dir())
	if err != nil {
		return nil, err
	}
	r := &Reloader{
		watcher: w,
		logger:  logger,
		names:   names,
		pending: make(map[string]*character.Definition),
		done:    make(chan struct{}),
	}
	go r.run()
	return r, nil
}

// Poll returns definitions rebuilt since the last call, keyed by file name.
func (r *Reloader) Poll() map[string]*character.Definition {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pending) == 0 {
		return nil
	}
	out := r.pending
	r.pending = make(map[string]*character.Definition)
	return out
}

// Close stops watching and waits for the reload goroutine to exit.
func (r *Reloader) Close() error {
	err := r.watcher.Close()
	<-r.done
	return err
}

func (r *Reloader) run() {
	defer close(r.done)
	for {
		select {
		case path, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			r.reload(path)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Error("prefab watcher failed", zap.Error(err))
		}
	}
}

func (r *Reloader) reload(path string) {
	base := filepath.Base(path)
	for _, name := range r.names {
		// a script may be shared by every character
		if !isScriptFile(path) && filepath.Base(name) != base {
			continue
		}
		_, def, err := LoadCharacter(name)
		if err != nil {
			r.logger.Error("reload character definition", zap.String("file", name), zap.Error(err))
			continue
		}
		r.logger.Info("reloaded character definition", zap.String("file", name), zap.String("changed", path))

		r.mu.Lock()
		r.pending[name] = def
		r.mu.Unlock()
	}
}
