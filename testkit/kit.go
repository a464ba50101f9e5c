// Package testkit 提供本仓库测试共用的辅助设施。
package testkit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Kit 包含通用的测试依赖
type Kit struct {
	Ctx context.Context
	Dir string
}

// NewKit 返回一个包含默认依赖的测试工具包
func NewKit(t *testing.T) *Kit {
	return &Kit{
		Ctx: context.Background(),
		Dir: t.TempDir(),
	}
}

// WriteConfig 在临时目录写一份配置文件并返回路径
func (k *Kit) WriteConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(k.Dir, "logging.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// NewContext 返回一个带有超时的测试上下文
func NewContext(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// NewID 返回一个唯一的测试 ID (UUID v4 前 8 位)
// 用于生成唯一的 class 名或路径后缀，避免测试间数据冲突
func NewID() string {
	return uuid.New().String()[0:8]
}
