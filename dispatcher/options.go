package dispatcher

import "io"

// Option 分发器构造选项
type Option func(*options)

// options 构造期可调参数
type options struct {
	writer io.Writer // console 输出目标，默认 os.Stdout
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithWriter 重定向 console 分发器的输出，测试时注入缓冲区
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}
