package dispatcher

import "github.com/ceyewan/alienprobe/config"

// Null 吞掉所有消息的分发器，压测或临时关闭输出时使用
type Null struct {
	name string
}

// newNull 构造 null 分发器，注册表内部使用
func newNull(cfg config.DispatcherConfig, _ ...Option) (Dispatcher, error) {
	return &Null{name: cfg.Name}, nil
}

// Name 返回配置段名
func (n *Null) Name() string { return n.name }

// Write 丢弃消息
func (n *Null) Write(*Message) error { return nil }

// Close 无持有资源，直接返回
func (n *Null) Close() error { return nil }
