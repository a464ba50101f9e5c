package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/ceyewan/alienprobe/config"
)

// defaultLogger 进程内共享的全局实例
var defaultLogger atomic.Pointer[Logger]

// SetDefault 设置全局默认 Logger，nil 被忽略
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(&l)
}

// Default 返回全局默认 Logger
//
// 未显式初始化时按 ALIENPROBE_CONFIG_FILE_PATH 环境变量尝试
// InitFromEnv；失败则 panic。宁可启动即失败，也不静默吞掉日志。
func Default() Logger {
	if p := defaultLogger.Load(); p != nil {
		return *p
	}
	l, err := InitFromEnv()
	if err != nil {
		panic(fmt.Sprintf("alienprobe: default logger unavailable: %v", err))
	}
	return l
}

// Init 从配置文件初始化全局默认 Logger
//
// 示例：
//
//	log, err := logger.Init("logging.toml", logger.WithWatcher())
func Init(path string, opts ...Option) (Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	l, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	SetDefault(l)
	return l, nil
}

// InitFromEnv 按环境变量定位配置文件并初始化全局默认 Logger
func InitFromEnv(opts ...Option) (Logger, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	l, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	SetDefault(l)
	return l, nil
}
