package signal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"

	"github.com/dusk-app/dusk/app/enum"
)

// File reads the preference from a plain file containing "light" or "dark"
// and follows edits with fsnotify. Intended for headless hosts where a
// scheduler or script flips the scheme.
type File struct {
	path string
}

// NewFile creates a file source for the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// PrefersDark reads and parses the file content.
func (f *File) PrefersDark(_ context.Context) (bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return false, fmt.Errorf("failed to read scheme file: %w", err)
	}
	t, err := enum.ParseTheme(strings.TrimSpace(string(data)))
	if err != nil {
		return false, fmt.Errorf("invalid scheme file content: %w", err)
	}
	return t == enum.ThemeDark, nil
}

// Watch follows the file and emits on every change of the parsed value.
// The parent directory is watched so atomic replace (write+rename) is seen.
// The returned channel is closed when ctx is done.
func (f *File) Watch(ctx context.Context) (<-chan bool, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(f.path), err)
	}

	last, lastErr := f.PrefersDark(ctx)
	known := lastErr == nil

	out := make(chan bool, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] scheme file watcher error: %v", werr)
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(f.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				cur, perr := f.PrefersDark(ctx)
				if perr != nil {
					log.Printf("[DEBUG] scheme file unreadable, ignored: %v", perr)
					continue
				}
				if known && cur == last {
					continue
				}
				last, known = cur, true
				select {
				case out <- cur:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
