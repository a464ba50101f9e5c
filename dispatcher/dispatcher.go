// Package dispatcher 定义日志输出端及其注册表。
//
// 每个分发器独立持有自己的格式化配置，互不影响。内置 console 和
// null 两个实现，自定义实现通过 Register 注册后即可在配置里按
// class 名引用。
//
// 示例：
//
//	dispatcher.Register("memory", func(cfg config.DispatcherConfig, opts ...dispatcher.Option) (dispatcher.Dispatcher, error) {
//		return &memorySink{cfg: cfg}, nil
//	})
package dispatcher

import (
	"time"

	"github.com/ceyewan/alienprobe/config"
	"github.com/ceyewan/alienprobe/format"
	"github.com/ceyewan/alienprobe/level"
)

// Message 一条待输出的日志
//
// Text 是静态消息（如 "Read input file"），变化的细节放 Params。
// Err 非 nil 时 Stack 带着记录时采集的调用栈。
type Message struct {
	Time        time.Time
	Level       level.Level
	Source      string
	Text        string
	Params      map[string]any
	Err         error
	Stack       string
	InstanceID  string
	MachineName string
}

// Dispatcher 日志输出端
type Dispatcher interface {
	// Name 返回配置中的段名
	Name() string
	// Write 输出一条日志，实现必须支持并发调用
	Write(msg *Message) error
	// Close 释放资源，关闭后不再有 Write 调用
	Close() error
}

// Render 按分发器配置把消息渲染成一行文本
//
// 时间先按 UTC 开关转换再格式化；消息里带错误且配置了
// exception_format 时，异常文本渲染后以空格拼接在行尾。
func Render(cfg *config.DispatcherConfig, msg *Message) string {
	ts := msg.Time
	if cfg.UTC {
		ts = ts.UTC()
	}
	v := format.Values{
		DateString:    format.Strftime(ts, cfg.DatetimeFormat),
		Level:         msg.Level.String(),
		MessageStatic: msg.Text,
		Params:        msg.Params,
		InstanceID:    msg.InstanceID,
		MachineName:   msg.MachineName,
		ClassName:     msg.Source,
	}
	line := cfg.MessageFormat.Render(v)
	if msg.Err != nil && cfg.ExceptionFormat != nil {
		v.ExceptionText = exceptionText(msg)
		line += " " + cfg.ExceptionFormat.Render(v)
	}
	return line
}

// exceptionText 错误文本加上记录时采集的调用栈
func exceptionText(msg *Message) string {
	text := msg.Err.Error()
	if msg.Stack != "" {
		text += "\n" + msg.Stack
	}
	return text
}
