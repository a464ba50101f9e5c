package logger

import "time"

// withClock 固定时间源，仅测试使用
func withClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
