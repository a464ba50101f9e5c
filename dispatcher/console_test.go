package dispatcher

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceyewan/alienprobe/level"
)

func TestConsoleWritePlain(t *testing.T) {
	cfg := testDispatcherConfig(t, `level="[[LOG_LEVEL]]" message="[[LOG_MESSAGE_STATIC]]"`, "")
	cfg.Colorize = false

	var buf bytes.Buffer
	d, err := New(cfg, WithWriter(&buf))
	require.NoError(t, err)

	require.NoError(t, d.Write(&Message{Level: level.Warn, Text: "low disk"}))
	assert.Equal(t, "level=\"warning\" message=\"low disk\"\n", buf.String())
}

func TestConsoleWriteColorized(t *testing.T) {
	cfg := testDispatcherConfig(t, "[[LOG_MESSAGE_STATIC]]", "")
	cfg.Colorize = true

	var buf bytes.Buffer
	d, err := New(cfg, WithWriter(&buf))
	require.NoError(t, err)

	require.NoError(t, d.Write(&Message{Level: level.Error, Text: "boom"}))
	assert.Equal(t, ansiLightRed+"boom"+ansiReset+"\n", buf.String())

	buf.Reset()
	require.NoError(t, d.Write(&Message{Level: level.Debug, Text: "probe"}))
	assert.Equal(t, ansiLightGreen+"probe"+ansiReset+"\n", buf.String())
}

func TestConsoleColorPerLevel(t *testing.T) {
	// 每个级别都有自己的颜色
	seen := map[string]bool{}
	for lvl := level.Trace; lvl <= level.Fatal; lvl++ {
		color, ok := levelColors[lvl]
		require.True(t, ok, "missing color for %v", lvl)
		assert.False(t, seen[color], "color %q reused at %v", color, lvl)
		seen[color] = true
	}
}

func TestConsoleConcurrentWrites(t *testing.T) {
	cfg := testDispatcherConfig(t, "[[LOG_MESSAGE_STATIC]]", "")
	cfg.Colorize = false

	var buf bytes.Buffer
	d, err := New(cfg, WithWriter(&buf))
	require.NoError(t, err)

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_ = d.Write(&Message{Level: level.Info, Text: fmt.Sprintf("w%d-%d", id, j)})
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, workers*perWorker)
	for _, line := range lines {
		// 行内不允许混入其他消息的内容
		assert.Regexp(t, `^w\d-\d+$`, line)
	}
}
