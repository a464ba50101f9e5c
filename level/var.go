package level

import (
	"strings"
	"sync/atomic"
)

// Snapshot 一份完整的级别配置，构建后不再修改
//
// Overrides 的 key 是小写的点分模块路径（如 "network.client"），
// value 是该子树的最低输出级别。Default 对没有任何前缀命中的模块生效。
type Snapshot struct {
	// Default 默认级别
	Default Level
	// Overrides 按模块路径的级别覆盖
	Overrides map[string]Level
}

// Resolve 解析模块路径生效的级别
//
// 按最长前缀匹配：先查完整路径，再逐级去掉最后一段，
// 都未命中时返回 Default。匹配不区分大小写。
//
// 示例：
//
//	// Overrides = {"network": Warn, "network.client": Debug}
//	s.Resolve("network.client.http") // Debug
//	s.Resolve("network.server")      // Warn
//	s.Resolve("storage")             // Default
func (s *Snapshot) Resolve(module string) Level {
	if s == nil {
		return Info
	}
	path := strings.ToLower(strings.TrimSpace(module))
	for path != "" {
		if lvl, ok := s.Overrides[path]; ok {
			return lvl
		}
		i := strings.LastIndex(path, ".")
		if i < 0 {
			break
		}
		path = path[:i]
	}
	return s.Default
}

// Enabled 判断模块在给定级别是否输出
func (s *Snapshot) Enabled(module string, lvl Level) bool {
	return lvl >= s.Resolve(module)
}

// Var 可原子热替换的级别快照容器
//
// 日志热路径只读快照，配置重载时整体替换指针，无需加锁。
// 零值可用，未 Store 前 Load 返回一份 Default 为 Info 的快照。
type Var struct {
	v atomic.Pointer[Snapshot]
}

// NewVar 用初始快照创建 Var
//
// snap 为 nil 时等价于零值 Var。
func NewVar(snap *Snapshot) *Var {
	var lv Var
	lv.Store(snap)
	return &lv
}

// Load 返回当前快照，总是非 nil
func (lv *Var) Load() *Snapshot {
	if s := lv.v.Load(); s != nil {
		return s
	}
	return &Snapshot{Default: Info}
}

// Store 原子替换快照，nil 被忽略
func (lv *Var) Store(snap *Snapshot) {
	if snap == nil {
		return
	}
	lv.v.Store(snap)
}
