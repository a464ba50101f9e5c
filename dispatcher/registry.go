package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/ceyewan/alienprobe/config"
	"github.com/ceyewan/alienprobe/xerrors"
)

// 内置分发器的 class 名。
const (
	ClassConsole = "console"
	ClassNull    = "null"
)

// ErrUnknownClass 配置引用了未注册的 class
var ErrUnknownClass = xerrors.New("unknown dispatcher class")

// Factory 根据配置构造分发器实例
type Factory func(cfg config.DispatcherConfig, opts ...Option) (Dispatcher, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

func init() {
	Register(ClassConsole, newConsole)
	Register(ClassNull, newNull)
}

// Register 注册分发器工厂，class 不区分大小写
//
// class 为空或 factory 为 nil 时 panic；重复注册时后者覆盖前者。
func Register(class string, factory Factory) {
	class = strings.ToLower(strings.TrimSpace(class))
	if class == "" {
		panic("dispatcher: Register with empty class")
	}
	if factory == nil {
		panic("dispatcher: Register with nil factory")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[class] = factory
}

// New 按配置里的 class 构造分发器
//
// class 未注册时返回 ErrUnknownClass，错误里带分发器名和 class 名。
func New(cfg config.DispatcherConfig, opts ...Option) (Dispatcher, error) {
	registryMu.RLock()
	factory, ok := registry[strings.ToLower(cfg.Class)]
	registryMu.RUnlock()
	if !ok {
		return nil, xerrors.Wrapf(ErrUnknownClass, "dispatcher %s references class %q", cfg.Name, cfg.Class)
	}
	return factory(cfg, opts...)
}

// Classes 返回已注册的 class 名，按字典序
func Classes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
