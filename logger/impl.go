package logger

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ceyewan/alienprobe/config"
	"github.com/ceyewan/alienprobe/dispatcher"
	"github.com/ceyewan/alienprobe/level"
	"github.com/ceyewan/alienprobe/xerrors"
)

// selfSource 门面自身日志的模块路径，可在 [log_levels] 里单独压低
const selfSource = "alienprobe.logger"

// loggerImpl 是 Logger 接口的具体实现
type loggerImpl struct {
	cfg         *config.Config
	levels      *level.Var
	dispatchers []dispatcher.Dispatcher
	watcher     *config.Watcher
	instanceID  string
	machineName string
	now         func() time.Time

	closeOnce sync.Once
	closeErr  error
}

// New 按配置构造 Logger
//
// 分发器按配置顺序逐个经注册表解析构造，任何一个失败都会聚合
// 报告并放弃整个构造。成功后输出一条 "Logger Initialized" 自述日志。
func New(cfg *config.Config, opts ...Option) (Logger, error) {
	if cfg == nil {
		return nil, xerrors.New("logger requires a configuration")
	}
	options := applyOptions(opts...)

	var (
		sinks  []dispatcher.Dispatcher
		issues []error
	)
	for _, dc := range cfg.Dispatchers {
		d, err := dispatcher.New(dc, options.dispatcherOpts...)
		if err != nil {
			issues = append(issues, err)
			continue
		}
		sinks = append(sinks, d)
	}
	if len(issues) > 0 {
		closeAll(sinks)
		return nil, xerrors.Wrap(xerrors.Combine(issues...), "failed to build dispatchers")
	}

	l := &loggerImpl{
		cfg:         cfg,
		levels:      level.NewVar(cfg.Levels),
		dispatchers: sinks,
		machineName: machineName(),
		now:         time.Now,
	}
	if options.now != nil {
		l.now = options.now
	}
	if cfg.Common.LogInstanceID {
		l.instanceID = newInstanceID(l.now())
	}

	if options.watch {
		if cfg.Path == "" {
			closeAll(sinks)
			return nil, xerrors.New("hot reload requires a configuration loaded from a file path")
		}
		// 默认把重载失败写回自己的 Warning，调用方可用 WithOnError 覆盖
		wopts := append([]config.WatcherOption{
			config.WithOnError(func(err error) {
				l.Warning(selfSource, "Log level reload failed", Params{"error": err.Error()})
			}),
		}, options.watcherOpts...)
		w, err := config.NewWatcher(cfg.Path, l.levels, wopts...)
		if err != nil {
			closeAll(sinks)
			return nil, err
		}
		l.watcher = w
		w.Start(context.Background())
	}

	l.Info(selfSource, "Logger Initialized", Params{
		"machine_name":   l.machineName,
		"start_time":     l.now().Format(time.RFC3339),
		"utc_start_time": l.now().UTC().Format(time.RFC3339),
	})
	return l, nil
}

func closeAll(sinks []dispatcher.Dispatcher) {
	for _, d := range sinks {
		_ = d.Close()
	}
}

func (l *loggerImpl) Trace(source any, msg string, params Params, errs ...error) {
	l.log(level.Trace, source, msg, params, errs...)
}

func (l *loggerImpl) Debug(source any, msg string, params Params, errs ...error) {
	l.log(level.Debug, source, msg, params, errs...)
}

func (l *loggerImpl) Info(source any, msg string, params Params, errs ...error) {
	l.log(level.Info, source, msg, params, errs...)
}

func (l *loggerImpl) Notice(source any, msg string, params Params, errs ...error) {
	l.log(level.Notice, source, msg, params, errs...)
}

func (l *loggerImpl) Warning(source any, msg string, params Params, errs ...error) {
	l.log(level.Warn, source, msg, params, errs...)
}

func (l *loggerImpl) Warn(source any, msg string, params Params, errs ...error) {
	l.log(level.Warn, source, msg, params, errs...)
}

func (l *loggerImpl) Error(source any, msg string, params Params, errs ...error) {
	l.log(level.Error, source, msg, params, errs...)
}

func (l *loggerImpl) Critical(source any, msg string, params Params, errs ...error) {
	l.log(level.Critical, source, msg, params, errs...)
}

func (l *loggerImpl) Fatal(source any, msg string, params Params, errs ...error) {
	l.log(level.Fatal, source, msg, params, errs...)
}

func (l *loggerImpl) Log(lvl level.Level, source any, msg string, params Params, errs ...error) {
	l.log(lvl, source, msg, params, errs...)
}

// log 级别过滤后把消息广播给全部分发器
//
// 每次调用取一份级别快照，热重载换入的新级别对后续调用生效。
// 单个分发器写失败只计数，不影响其余分发器。
func (l *loggerImpl) log(lvl level.Level, source any, msg string, params Params, errs ...error) {
	src := sourceName(source)
	if !l.levels.Load().Enabled(src, lvl) {
		MessagesSuppressed.WithLabelValues(lvl.String()).Inc()
		return
	}

	err := xerrors.Join(errs...)
	m := &dispatcher.Message{
		Time:        l.now(),
		Level:       lvl,
		Source:      src,
		Text:        msg,
		Params:      params,
		Err:         err,
		InstanceID:  l.instanceID,
		MachineName: l.machineName,
	}
	if err != nil {
		m.Stack = callStack(4)
	}

	for _, d := range l.dispatchers {
		start := time.Now()
		if werr := d.Write(m); werr != nil {
			DispatchErrors.WithLabelValues(d.Name()).Inc()
			continue
		}
		MessagesTotal.WithLabelValues(lvl.String(), d.Name()).Inc()
		DispatchDuration.WithLabelValues(d.Name()).Observe(time.Since(start).Seconds())
	}
}

// Levels 返回级别容器
func (l *loggerImpl) Levels() *level.Var { return l.levels }

// Dispatchers 返回激活分发器的副本，顺序与配置一致
func (l *loggerImpl) Dispatchers() []dispatcher.Dispatcher {
	return append([]dispatcher.Dispatcher(nil), l.dispatchers...)
}

// InstanceID 返回实例标识，未启用时为空串
func (l *loggerImpl) InstanceID() string { return l.instanceID }

// MachineName 返回主机名
func (l *loggerImpl) MachineName() string { return l.machineName }

// Close 停掉热重载并关闭全部分发器，重复调用返回第一次的结果
func (l *loggerImpl) Close() error {
	l.closeOnce.Do(func() {
		if l.watcher != nil {
			l.watcher.Stop()
		}
		var errs []error
		for _, d := range l.dispatchers {
			if err := d.Close(); err != nil {
				errs = append(errs, xerrors.Wrapf(err, "failed to close dispatcher %s", d.Name()))
			}
		}
		l.closeErr = xerrors.Combine(errs...)
	})
	return l.closeErr
}

// sourceName 把调用方转成模块路径文本
//
// 字符串原样使用；其余类型解引用后取类型名（如 "ingest.Reader"），
// nil 记为 "unknown"。
func sourceName(source any) string {
	switch s := source.(type) {
	case nil:
		return "unknown"
	case string:
		return s
	}
	t := reflect.TypeOf(source)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// callStack 采集当前调用栈文本，skip 跳过日志门面自身的帧
func callStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var builder strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return builder.String()
}
