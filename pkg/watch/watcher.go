package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/odpi/mermaidgraph/pkg/errors"
)

// FileWatcher reports changes to a fixed set of files.
//
// It watches each file's directory rather than the file itself: editors
// commonly save by writing a temporary file and renaming it over the
// original, which a watch on the old inode would miss.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changes chan string
	logger  *log.Logger
}

// NewFileWatcher watches files, which must exist.
func NewFileWatcher(files []string, logger *log.Logger) (*FileWatcher, error) {
	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no files to watch")
	}
	if logger == nil {
		logger = log.Default()
	}

	set := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", f)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "watch %s", f)
		}
		if info.IsDir() {
			return nil, errors.New(errors.ErrCodeInvalidPath, "%s is a directory", f)
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		set[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create fsnotify watcher")
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "watch %s", dir)
		}
	}

	return &FileWatcher{
		watcher: w,
		files:   set,
		changes: make(chan string, 16),
		logger:  logger,
	}, nil
}

// Start begins forwarding changes until ctx is done, then closes the
// underlying watcher and the changes channel.
func (fw *FileWatcher) Start(ctx context.Context) {
	go fw.run(ctx)
}

// Changes returns the absolute paths of changed files, one per write.
func (fw *FileWatcher) Changes() <-chan string {
	return fw.changes
}

func (fw *FileWatcher) run(ctx context.Context) {
	defer close(fw.changes)
	defer fw.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(ev.Name)
			if !fw.files[name] {
				continue
			}
			fw.logger.Debug("file changed", "path", name, "op", ev.Op.String())
			select {
			case fw.changes <- name:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("watcher error", "err", err)
		}
	}
}

// Watch watches files and returns debounced change events. The channel is
// closed when ctx is done.
func Watch(ctx context.Context, files []string, debounce time.Duration, logger *log.Logger) (<-chan Event, error) {
	fw, err := NewFileWatcher(files, logger)
	if err != nil {
		return nil, err
	}
	fw.Start(ctx)

	d := NewDebouncer(fw.Changes(), debounce, 10*debounce)
	d.Start(ctx)
	return d.Output(), nil
}
