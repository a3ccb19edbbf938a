package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadWindow = 100 * time.Millisecond

// Watcher reports character spec files that changed on disk. Events and
// Errors are closed once the watcher stops.
type Watcher struct {
	fs     *fsnotify.Watcher
	Events chan string
	Errors chan error

	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.loop(newDebouncer(reloadWindow))
	return w, nil
}

// Close stops the watcher and waits for its goroutine. Later calls are
// no-ops.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.stopped
	})
	return err
}

func (w *Watcher) loop(d *debouncer) {
	defer close(w.stopped)
	defer close(w.Errors)
	defer close(w.Events)

	for {
		select {
		case <-w.stop:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !specChanged(ev) || !d.allow(ev.Name, time.Now()) {
				continue
			}
			select {
			case w.Events <- ev.Name:
			case <-w.stop:
				return
			}
		}
	}
}

// specChanged reports whether ev wrote a YAML file into place.
func specChanged(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// debouncer drops repeats of a name inside the window. Editors often save
// with several writes.
type debouncer struct {
	window time.Duration
	seen   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, seen: make(map[string]time.Time)}
}

func (d *debouncer) allow(name string, now time.Time) bool {
	if at, ok := d.seen[name]; ok && now.Sub(at) < d.window {
		return false
	}
	d.seen[name] = now
	return true
}
