package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/alienprobe/config"
	"github.com/ceyewan/alienprobe/testkit"
)

const nullOnlyConfig = `
[common]
dispatchers = ["drop"]

[log_levels]
default_log_level = "info"

[drop]
dispatcher_class_identifier = "null"
message_format = "[[LOG_MESSAGE_STATIC]]"
`

// resetDefault 清空全局实例，测试结束后恢复
func resetDefault(t *testing.T) {
	t.Helper()
	old := defaultLogger.Load()
	defaultLogger.Store(nil)
	t.Cleanup(func() { defaultLogger.Store(old) })
}

func TestSetDefaultAndDefault(t *testing.T) {
	resetDefault(t)

	l := Discard()
	SetDefault(l)
	assert.Equal(t, l, Default())

	// nil 不覆盖已有实例
	SetDefault(nil)
	assert.Equal(t, l, Default())
}

func TestInitSetsDefault(t *testing.T) {
	resetDefault(t)
	kit := testkit.NewKit(t)
	path := kit.WriteConfig(t, nullOnlyConfig)

	l, err := Init(path)
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, l, Default())
}

func TestInitInvalidConfig(t *testing.T) {
	resetDefault(t)
	kit := testkit.NewKit(t)
	path := kit.WriteConfig(t, `
[log_levels]
default_log_level = "info"
`)

	_, err := Init(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingSection)
}

func TestInitFromEnv(t *testing.T) {
	resetDefault(t)
	kit := testkit.NewKit(t)
	path := kit.WriteConfig(t, nullOnlyConfig)
	t.Setenv(config.EnvConfigFile, path)

	l, err := InitFromEnv()
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, l, Default())
}

func TestDefaultLazyInit(t *testing.T) {
	resetDefault(t)
	kit := testkit.NewKit(t)
	path := kit.WriteConfig(t, nullOnlyConfig)
	t.Setenv(config.EnvConfigFile, path)

	l := Default()
	require.NotNil(t, l)
	defer l.Close()

	// 再次取返回同一个实例
	assert.Equal(t, l, Default())
}

func TestDefaultPanicsWithoutConfig(t *testing.T) {
	resetDefault(t)
	t.Setenv(config.EnvConfigFile, "")

	assert.Panics(t, func() { Default() })
}
