package filewatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"influence_survey/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = time.Second

// Watch 监听单个文件的变化，防抖后调用 onChange，直到 ctx 取消。
// 监听的是所在目录，编辑器以重命名方式替换文件时同样能感知。
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", absPath, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	go run(ctx, watcher, absPath, debounce, onChange)
	return nil
}

func run(ctx context.Context, watcher *fsnotify.Watcher, absPath string, debounce time.Duration, onChange func()) {
	defer watcher.Close()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath || event.Op&relevant == 0 {
				continue
			}
			// 防抖处理
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case <-timer.C:
			logger.Log.Debug("watched file changed", zap.String("path", absPath))
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("File watcher error", zap.String("path", absPath), zap.Error(err))
		}
	}
}
