// Package level 定义日志级别及按模块路径的级别解析。
//
// 级别共 8 档，数值越大严重程度越高。Var 持有可热替换的级别快照，
// 读取方每次日志调用取一次快照，写入方整体替换，互不阻塞。
package level

import (
	"fmt"
	"strings"
)

// Level 日志级别类型
//
// 支持8个级别，按严重程度递增：
//
//	Trace:    最细粒度的跟踪信息，定位疑难问题时使用
//	Debug:    调试信息，通常只在开发环境开启
//	Info:     一般信息，记录正常的业务流程
//	Notice:   正常但值得关注的事件
//	Warn:     警告信息，表示潜在问题（"warn" 与 "warning" 等价）
//	Error:    错误信息，程序出错但可恢复
//	Critical: 严重错误，关键功能不可用
//	Fatal:    致命错误，进程大概率无法继续
//
// Trace 数值最小，Fatal 最大。
type Level int8

const (
	Trace Level = iota
	Debug
	Info
	Notice
	Warn
	Error
	Critical
	Fatal
)

// Warning 是 Warn 的别名，两个写法解析为同一级别。
const Warning = Warn

// String 返回级别的规范小写名称
//
// 示例：
//
//	level.Debug.String() // "debug"
//	level.Warn.String()  // "warning"
func (l Level) String() string {
	switch l {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Notice:
		return "notice"
	case Warn:
		return "warning"
	case Error:
		return "error"
	case Critical:
		return "critical"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// Parse 将字符串解析为 Level
//
// 不区分大小写，忽略首尾空白。支持的字符串：
//
//	"trace", "debug", "info", "notice", "warn", "warning",
//	"error", "critical", "fatal"
//
// 如果无法解析，返回 Info 和错误信息。
//
// 示例：
//
//	lvl, err := level.Parse("WARNING")
//	lvl, err := level.Parse(" debug ")
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return Trace, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "notice":
		return Notice, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	case "critical":
		return Critical, nil
	case "fatal":
		return Fatal, nil
	default:
		return Info, fmt.Errorf("unknown log level: %s", s)
	}
}
