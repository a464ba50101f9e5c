// Package logger 提供面向下游日志分析系统的结构化日志门面。
//
// 每条日志由三部分构成：静态消息（如 "Read input file"，下游系统
// 按它聚合告警）、参数表（变化的细节放这里，不要拼进静态消息）、
// 可选的错误。消息经级别过滤后广播给配置激活的全部分发器。
//
// 基本使用：
//
//	cfg, err := config.Load("logging.toml")
//	if err != nil {
//		return err
//	}
//	log, err := logger.New(cfg)
//	if err != nil {
//		return err
//	}
//	defer log.Close()
//	log.Info(self, "Read input file", logger.Params{"path": path, "size": size})
//
// 启用级别热重载：
//
//	log, err := logger.New(cfg, logger.WithWatcher())
//
// 进程级全局实例：
//
//	logger.Init("logging.toml")
//	logger.Default().Warning("worker", "Cannot connect, retrying", logger.Params{"url": url})
package logger

import (
	"github.com/ceyewan/alienprobe/dispatcher"
	"github.com/ceyewan/alienprobe/level"
)

// Params 一条日志的参数表
//
// key 是参数名，value 任意，渲染时编码为 key="value"。
type Params map[string]any

// Logger 日志门面接口
//
// 所有级别方法签名一致：source 是调用方（传结构体指针或模块路径
// 字符串，用于按模块过滤级别），msg 是静态消息，params 放变化的
// 细节，errs 是要随日志输出的错误（会附带记录时的调用栈）。
//
// 示例：
//
//	log.Debug(r, "Read input file", logger.Params{"path": path})
//	log.Error(r, "Cannot read input file", logger.Params{"path": path}, err)
type Logger interface {
	// Trace 最细粒度的跟踪信息，排查疑难时临时打开，影响性能
	Trace(source any, msg string, params Params, errs ...error)
	// Debug 开发调试信息
	Debug(source any, msg string, params Params, errs ...error)
	// Info 正常业务事件，最常用的级别
	Info(source any, msg string, params Params, errs ...error)
	// Notice 比 Info 重要、又不算告警的事件
	Notice(source any, msg string, params Params, errs ...error)
	// Warning 可恢复的错误，执行还能继续
	Warning(source any, msg string, params Params, errs ...error)
	// Warn 是 Warning 的别名
	Warn(source any, msg string, params Params, errs ...error)
	// Error 不可恢复的错误，当前操作已失败
	Error(source any, msg string, params Params, errs ...error)
	// Critical 比 Error 更严重，不立即处理就会演变成 Fatal
	Critical(source any, msg string, params Params, errs ...error)
	// Fatal 系统已经停止或进入不可用状态。只做记录，不结束进程，
	// 是否退出由调用方决定
	Fatal(source any, msg string, params Params, errs ...error)

	// Log 按给定级别记录，自定义封装时使用
	Log(lvl level.Level, source any, msg string, params Params, errs ...error)

	// Levels 返回级别容器，热重载换入的就是它
	Levels() *level.Var
	// Dispatchers 返回激活的分发器，顺序与配置一致
	Dispatchers() []dispatcher.Dispatcher
	// InstanceID 返回本实例标识，未启用时为空串
	InstanceID() string
	// MachineName 返回主机名
	MachineName() string

	// Close 停掉热重载并按顺序关闭所有分发器，幂等
	Close() error
}
