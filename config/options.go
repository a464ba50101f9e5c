package config

import "time"

// WatcherOption 监听器选项模式
type WatcherOption func(*watcherOptions)

// watcherOptions 监听器可调参数
type watcherOptions struct {
	interval time.Duration      // 周期性重载间隔
	debounce time.Duration      // 文件事件合并窗口
	onSwap   func(*LevelConfig) // 换入成功回调
	onError  func(error)        // 重载失败回调
}

func defaultWatcherOptions() *watcherOptions {
	return &watcherOptions{
		interval: time.Minute,
		debounce: 500 * time.Millisecond,
	}
}

// WithInterval 设置周期性重载的间隔，非正值忽略
func WithInterval(d time.Duration) WatcherOption {
	return func(o *watcherOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithDebounce 设置文件事件的合并窗口，非正值忽略
func WithDebounce(d time.Duration) WatcherOption {
	return func(o *watcherOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithOnSwap 注册换入成功后的回调，参数是新的级别配置
func WithOnSwap(fn func(*LevelConfig)) WatcherOption {
	return func(o *watcherOptions) {
		o.onSwap = fn
	}
}

// WithOnError 注册重载失败时的回调
func WithOnError(fn func(error)) WatcherOption {
	return func(o *watcherOptions) {
		o.onError = fn
	}
}
