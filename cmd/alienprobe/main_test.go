package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodConfig = `
[common]
dispatchers = ["console_out"]

[log_levels]
default_log_level = "debug"
noisy_module = "error"

[console_out]
dispatcher_class_identifier = "console"
colorize_messages = false
message_format = 'level="[[LOG_LEVEL]]" message="[[LOG_MESSAGE_STATIC]]" [[LOG_PARAMS]]'
`

const badConfig = `
[common]
dispatchers = ["console_out"]

[log_levels]
noisy_module = "error"

[console_out]
dispatcher_class_identifier = "console"
message_format = 'msg=[[LOG_MESSAGE_STATIC]]'
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logging.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCommand 用给定参数跑一次根命令，捕获 stdout 与 stderr
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := writeConfig(t, goodConfig)

	out, _, err := runCommand(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, ": OK")
	assert.Contains(t, out, "default level: debug")
	assert.Contains(t, out, "override noisy_module: error")
	assert.Contains(t, out, "dispatcher console_out: class=console")
}

func TestValidateCommandReportsIssues(t *testing.T) {
	path := writeConfig(t, badConfig)

	_, errOut, err := runCommand(t, "validate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "log_levels.default_log_level")
}

func TestValidateCommandMissingFile(t *testing.T) {
	_, _, err := runCommand(t, "validate", "--config", filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	path := writeConfig(t, goodConfig)

	out, _, err := runCommand(t, "render", "--config", path,
		"--level", "warning", "--message", "disk almost full", "--param", "disk=/dev/sda1")
	require.NoError(t, err)
	assert.Contains(t, out, `level="warning"`)
	assert.Contains(t, out, `message="disk almost full"`)
	assert.Contains(t, out, `disk="/dev/sda1"`)
}

func TestRenderCommandUnknownDispatcher(t *testing.T) {
	path := writeConfig(t, goodConfig)

	_, _, err := runCommand(t, "render", "--config", path, "--dispatcher", "ghost")
	require.Error(t, err)
}

func TestRenderCommandBadLevel(t *testing.T) {
	path := writeConfig(t, goodConfig)

	_, _, err := runCommand(t, "render", "--config", path, "--level", "loudest")
	require.Error(t, err)
}

func TestRenderCommandBadParam(t *testing.T) {
	path := writeConfig(t, goodConfig)

	_, _, err := runCommand(t, "render", "--config", path, "--param", "no-equals-sign")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
