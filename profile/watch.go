package profile

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must stay quiet before its edit is
// reported. Editors land one save as a burst of writes.
const settleDelay = 100 * time.Millisecond

// Watcher reports edited profile file names so a running game can
// re-apply bindings without restarting. Events carries bare file names
// in Load's vocabulary ("default.yaml"), one per settled edit.
type Watcher struct {
	fsw    *fsnotify.Watcher
	Events chan string
	Errors chan error

	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher watches the given directories for profile edits.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("profile: watch: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("profile: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fsw:    fsw,
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching. The watch loop closes Events and Errors on its
// way out, so a draining consumer sees them end rather than block.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]struct{})
	var (
		settle *time.Timer
		fire   <-chan time.Time
	)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			name := filepath.Base(ev.Name)
			ext := strings.ToLower(filepath.Ext(name))
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			pending[name] = struct{}{}
			if settle == nil {
				settle = time.NewTimer(settleDelay)
			} else {
				if !settle.Stop() {
					select {
					case <-settle.C:
					default:
					}
				}
				settle.Reset(settleDelay)
			}
			fire = settle.C

		case <-fire:
			for name := range pending {
				select {
				case w.Events <- name:
				case <-w.done:
					return
				}
			}
			clear(pending)
			fire = nil

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}
