package config

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/ceyewan/alienprobe/level"
	"github.com/ceyewan/alienprobe/xerrors"
)

// Watcher 在运行期热重载 [log_levels] 段
//
// 两个触发源共用一条重载路径：默认一分钟一次的定时器，
// 以及配置文件的写入事件（fsnotify，限流合并编辑器的连续写）。
// 重载只在重新校验成功时原子换入新快照，失败保留上一份，
// 分发器配置在任何情况下都不受影响。
//
// 示例：
//
//	w, err := config.NewWatcher(cfg.Path, levels, config.WithInterval(10*time.Second))
//	if err != nil {
//		return err
//	}
//	w.Start(ctx)
//	defer w.Stop()
type Watcher struct {
	path    string
	levels  *level.Var
	opts    *watcherOptions
	fsw     *fsnotify.Watcher
	limiter *rate.Limiter

	started atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewWatcher 创建监听器，不会立即开始监听
func NewWatcher(path string, lv *level.Var, opts ...WatcherOption) (*Watcher, error) {
	if path == "" {
		return nil, xerrors.New("config watcher requires a file path")
	}
	if lv == nil {
		return nil, xerrors.New("config watcher requires a level variable")
	}
	options := defaultWatcherOptions()
	for _, o := range opts {
		o(options)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, xerrors.Wrap(err, "failed to create file watcher")
	}
	// 监听所在目录而不是文件本身，编辑器原子替换后事件不丢
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, xerrors.Wrapf(err, "failed to watch directory of %s", path)
	}

	return &Watcher{
		path:    path,
		levels:  lv,
		opts:    options,
		fsw:     fsw,
		limiter: rate.NewLimiter(rate.Every(options.debounce), 1),
		done:    make(chan struct{}),
	}, nil
}

// Start 启动监听 goroutine，重复调用只有第一次生效
func (w *Watcher) Start(ctx context.Context) {
	if !w.started.CompareAndSwap(false, true) {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	go w.run(ctx)
}

// Stop 停止监听并释放文件句柄，未 Start 过也可安全调用
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	_ = w.fsw.Close()
	if w.started.Load() {
		<-w.done
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.opts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.reload()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) && w.limiter.Allow() {
				w.reload()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(xerrors.Wrap(err, "file watcher error"))
		}
	}
}

// relevant 只关心配置文件本身的写入、创建和重命名
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != filepath.Base(w.path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// reload 重读级别段，校验成功才换入，失败保留现有快照
func (w *Watcher) reload() {
	next, err := ReloadLevels(w.path)
	if err != nil {
		LevelReloadsTotal.WithLabelValues("error").Inc()
		w.report(err)
		return
	}
	w.levels.Store(next)
	LevelReloadsTotal.WithLabelValues("ok").Inc()
	if w.opts.onSwap != nil {
		w.opts.onSwap(next)
	}
}

func (w *Watcher) report(err error) {
	if w.opts.onError != nil {
		w.opts.onError(err)
	}
}
