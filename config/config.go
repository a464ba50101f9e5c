// Package config 加载并校验日志配置。
//
// 配置文件是 TOML，分三段：[common] 全局开关、[log_levels] 级别表、
// 其余每个表是一个分发器。加载是全量校验：所有问题一次性收齐返回，
// 不产出半成品配置。Watcher 在运行期只热重载 [log_levels] 段。
package config

import (
	"strings"

	"github.com/ceyewan/alienprobe/format"
	"github.com/ceyewan/alienprobe/level"
	"github.com/ceyewan/alienprobe/xerrors"
)

const (
	// EnvConfigFile 指向配置文件路径的环境变量
	EnvConfigFile = "ALIENPROBE_CONFIG_FILE_PATH"

	// DefaultDatetimeFormat 省略 datetime_format 时使用的时间模式
	DefaultDatetimeFormat = "YY%Y-%m-%d_%H:%M:%S.%f"

	// DefaultExceptionFormat 省略 exception_format 时使用的异常模板
	DefaultExceptionFormat = "exception=\"\n[[EXCEPTION_TEXT]]\""
)

// defaultExceptionTemplate 所有省略 exception_format 的分发器共享这一份。
var defaultExceptionTemplate = xerrors.Must(format.Parse(DefaultExceptionFormat))

// LevelConfig 级别配置，默认级别加按模块路径的覆盖表
type LevelConfig = level.Snapshot

// CommonConfig 对应 [common] 段
type CommonConfig struct {
	// Dispatchers 要激活的分发器段名，顺序即分发顺序
	Dispatchers []string
	// LogInstanceID 是否为本次进程生成并输出实例标识
	LogInstanceID bool
}

// DispatcherConfig 单个分发器的配置
//
// Name 是 TOML 表名，Class 决定由哪个注册的实现处理输出。
// 两个模板在加载期解析完成，渲染期零解析开销。
type DispatcherConfig struct {
	Name            string
	Class           string
	DatetimeFormat  string
	UTC             bool
	Colorize        bool
	MessageFormat   *format.Template
	ExceptionFormat *format.Template
}

// Config 一次加载得到的完整配置
//
// 加载成功后不再修改。Path 记录来源文件路径，
// 从 io.Reader 解析时为空。
type Config struct {
	Common      CommonConfig
	Levels      *LevelConfig
	Dispatchers []DispatcherConfig
	Path        string
}

// Dispatcher 按名字查找分发器配置，找不到返回 nil
func (c *Config) Dispatcher(name string) *DispatcherConfig {
	if c == nil {
		return nil
	}
	name = strings.ToLower(name)
	for i := range c.Dispatchers {
		if c.Dispatchers[i].Name == name {
			return &c.Dispatchers[i]
		}
	}
	return nil
}
