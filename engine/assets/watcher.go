package assets

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/lumen/engine/core"
)

/**
 * @brief Watches the assets directory and fires EVENT_CODE_ASSET_WRITTEN
 * whenever a shader source changes on disk. The event carries the path
 * relative to the assets root, matching the paths in program configs.
 */
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher starts watching root and every directory below it.
func NewWatcher(root string) (*Watcher, error) {
	if root == "" {
		root = DefaultRoot
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		root:    root,
		watcher: fw,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !isShaderSource(event.Name) {
				continue
			}
			rel, err := filepath.Rel(w.root, event.Name)
			if err != nil {
				core.LogWarn("ignoring asset event outside root: %s", event.Name)
				continue
			}
			core.LogDebug("asset written: %s", rel)
			core.EventFire(core.EventContext{
				Type: core.EVENT_CODE_ASSET_WRITTEN,
				Data: core.AssetEvent{Path: filepath.ToSlash(rel)},
			})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher goroutine and releases the OS watches.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func isShaderSource(path string) bool {
	switch filepath.Ext(path) {
	case ".vert", ".frag", ".glsl":
		return true
	}
	return false
}
