package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInstanceID(t *testing.T) {
	id := NewInstanceID()
	assert.Regexp(t, `^\d{8}_\d{6}Z_[0-9A-F]{5}$`, id)
}

func TestNewInstanceIDTimePart(t *testing.T) {
	fixed := time.Date(2026, time.August, 24, 14, 15, 3, 0, time.UTC)
	id := newInstanceID(fixed)
	assert.True(t, strings.HasPrefix(id, "20260824_141503Z_"), "id = %s", id)

	// 本地时区的时间也按 UTC 格式化
	zone := time.FixedZone("UTC+8", 8*3600)
	id = newInstanceID(time.Date(2026, time.August, 24, 22, 15, 3, 0, zone))
	assert.True(t, strings.HasPrefix(id, "20260824_141503Z_"), "id = %s", id)
}

func TestMachineName(t *testing.T) {
	assert.NotEmpty(t, machineName())
}
