package logger

import (
	"time"

	"github.com/ceyewan/alienprobe/config"
	"github.com/ceyewan/alienprobe/dispatcher"
)

// Option Logger 构造选项模式
type Option func(*options)

// options 构造期可调参数
type options struct {
	watch          bool                   // 是否启用级别热重载
	watcherOpts    []config.WatcherOption // 透传给 config.NewWatcher
	dispatcherOpts []dispatcher.Option    // 透传给每个分发器工厂
	now            func() time.Time       // 时间源，测试时固定
}

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithWatcher 启用级别热重载
//
// 要求配置通过 config.Load 从文件加载（需要文件路径）。重载失败
// 默认写回 Logger 自己的 Warning，传 config.WithOnError 可覆盖。
//
// 示例：
//
//	log, err := logger.New(cfg, logger.WithWatcher(config.WithInterval(10*time.Second)))
func WithWatcher(opts ...config.WatcherOption) Option {
	return func(o *options) {
		o.watch = true
		o.watcherOpts = append(o.watcherOpts, opts...)
	}
}

// WithDispatcherOptions 透传分发器构造选项，测试时注入输出缓冲
func WithDispatcherOptions(opts ...dispatcher.Option) Option {
	return func(o *options) {
		o.dispatcherOpts = append(o.dispatcherOpts, opts...)
	}
}
