package logger

import (
	"github.com/ceyewan/alienprobe/dispatcher"
	"github.com/ceyewan/alienprobe/level"
)

// noopLogger 是一个什么都不做的 Logger 实现（内部使用）
type noopLogger struct{}

// Discard 创建一个静默的 Logger 实例
//
// 返回的 Logger 实现了 Logger 接口，但所有方法体都是空操作。
func Discard() Logger {
	return &noopLogger{}
}

// 空实现 - 所有级别日志都不做任何事
func (l *noopLogger) Trace(source any, msg string, params Params, errs ...error)    {}
func (l *noopLogger) Debug(source any, msg string, params Params, errs ...error)    {}
func (l *noopLogger) Info(source any, msg string, params Params, errs ...error)     {}
func (l *noopLogger) Notice(source any, msg string, params Params, errs ...error)   {}
func (l *noopLogger) Warning(source any, msg string, params Params, errs ...error)  {}
func (l *noopLogger) Warn(source any, msg string, params Params, errs ...error)     {}
func (l *noopLogger) Error(source any, msg string, params Params, errs ...error)    {}
func (l *noopLogger) Critical(source any, msg string, params Params, errs ...error) {}
func (l *noopLogger) Fatal(source any, msg string, params Params, errs ...error)    {}

func (l *noopLogger) Log(lvl level.Level, source any, msg string, params Params, errs ...error) {}

// Levels 返回一个独立的级别容器，对输出没有影响
func (l *noopLogger) Levels() *level.Var { return level.NewVar(nil) }

// Dispatchers 没有分发器
func (l *noopLogger) Dispatchers() []dispatcher.Dispatcher { return nil }

// InstanceID 没有实例标识
func (l *noopLogger) InstanceID() string { return "" }

// MachineName 没有主机名
func (l *noopLogger) MachineName() string { return "" }

// Close 是空操作
func (l *noopLogger) Close() error { return nil }
