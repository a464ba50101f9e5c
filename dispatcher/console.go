package dispatcher

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ceyewan/alienprobe/config"
	"github.com/ceyewan/alienprobe/level"
)

// ANSI 控制序列。
const (
	ansiReset        = "\033[0m"
	ansiRed          = "\033[0;31m"
	ansiYellow       = "\033[0;33m"
	ansiLightGray    = "\033[0;37m"
	ansiLightRed     = "\033[1;31m"
	ansiLightGreen   = "\033[1;32m"
	ansiLightBlue    = "\033[1;34m"
	ansiLightMagenta = "\033[1;35m"
	ansiLightCyan    = "\033[1;36m"
)

// levelColors 级别到高亮颜色的映射
var levelColors = map[level.Level]string{
	level.Trace:    ansiLightGray,
	level.Debug:    ansiLightGreen,
	level.Info:     ansiLightBlue,
	level.Notice:   ansiLightCyan,
	level.Warn:     ansiYellow,
	level.Error:    ansiLightRed,
	level.Critical: ansiLightMagenta,
	level.Fatal:    ansiRed,
}

// Console 输出到标准输出的分发器
//
// 写入由互斥锁串行化，多个 goroutine 的日志行不会交错。
type Console struct {
	cfg    config.DispatcherConfig
	writer io.Writer
	mu     sync.Mutex
}

// newConsole 构造 console 分发器，注册表内部使用
func newConsole(cfg config.DispatcherConfig, opts ...Option) (Dispatcher, error) {
	options := applyOptions(opts)
	w := options.writer
	if w == nil {
		w = os.Stdout
	}
	return &Console{cfg: cfg, writer: w}, nil
}

// Name 返回配置段名
func (c *Console) Name() string { return c.cfg.Name }

// Write 渲染并输出一行，按配置加 ANSI 颜色
func (c *Console) Write(msg *Message) error {
	line := Render(&c.cfg, msg)
	if c.cfg.Colorize {
		if color, ok := levelColors[msg.Level]; ok {
			line = color + line + ansiReset
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.writer, line)
	return err
}

// Close 无持有资源，直接返回
func (c *Console) Close() error { return nil }
