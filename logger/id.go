package logger

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewInstanceID 生成一个新的实例标识
//
// 形如 20260824_141503Z_A3F09：UTC 时间加 5 位大写十六进制随机码，
// 集群里多节点同时上线时靠它区分各自的日志。
func NewInstanceID() string {
	return newInstanceID(time.Now())
}

// newInstanceID 随机码取自新生成 UUID 的头 5 个字符
func newInstanceID(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:5])
	return now.UTC().Format("20060102_150405") + "Z_" + suffix
}

// machineName 取主机名，失败时退回 "Unknown"
func machineName() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "Unknown"
	}
	return name
}
