package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     Level
	}{
		{name: "debug when TALLY_DEBUG is set", envValue: "1", want: LevelDebug},
		{name: "debug when TALLY_DEBUG is any value", envValue: "true", want: LevelDebug},
		{name: "default when TALLY_DEBUG is empty", envValue: "", want: LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TALLY_DEBUG", tt.envValue)
			assert.Equal(t, tt.want, LevelFromEnv(LevelWarn))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestLeveledLogger_Filtering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "[check]", LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warning message")
	l.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "[check] WARN: warning message")
	assert.Contains(t, out, "[check] ERROR: error message")
}

func TestLeveledLogger_DebugLevelLogsEverything(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "[config]", LevelDebug)

	l.Debug("loaded %s", ".tally.yaml")
	l.Info("info %d", 42)

	out := buf.String()
	assert.Contains(t, out, "[config] loaded .tally.yaml")
	assert.Contains(t, out, "[config] info 42")
}

func TestLeveledLogger_NoPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", LevelInfo)

	l.Info("plain")

	assert.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), " plain"))
	assert.NotContains(t, buf.String(), "  plain")
}

func TestLeveledLogger_FormatStrings(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "[fmt]", LevelInfo)

	l.Info("int: %d, string: %s, float: %.2f", 42, "hello", 3.14159)

	output := buf.String()
	assert.Contains(t, output, "int: 42")
	assert.Contains(t, output, "string: hello")
	assert.Contains(t, output, "float: 3.14")
}

func TestNoopLogger(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("debug")
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	msgs := l.Messages()
	require.Len(t, msgs, 4)

	assert.Equal(t, LogMessage{Level: LevelDebug, Message: "debug msg"}, msgs[0])
	assert.Equal(t, LogMessage{Level: LevelInfo, Message: "info msg"}, msgs[1])
	assert.Equal(t, LogMessage{Level: LevelWarn, Message: "warn msg"}, msgs[2])
	assert.Equal(t, LogMessage{Level: LevelError, Message: "error msg"}, msgs[3])
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()

	assert.False(t, l.HasLevel(LevelDebug))
	assert.False(t, l.HasLevel(LevelError))

	l.Debug("test")
	assert.True(t, l.HasLevel(LevelDebug))
	assert.False(t, l.HasLevel(LevelError))

	l.Error("test")
	assert.True(t, l.HasLevel(LevelError))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("test1")
	l.Info("test2")
	require.Len(t, l.Messages(), 2)

	l.Clear()
	assert.Empty(t, l.Messages())
}

func TestBufferLogger_ConcurrentWrites(t *testing.T) {
	l := NewBufferLogger()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Info("worker %d", n)
		}(i)
	}
	wg.Wait()

	assert.Len(t, l.Messages(), 8)
}

func TestDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	assert.NotNil(t, Default())

	buf := NewBufferLogger()
	SetDefault(buf)

	assert.Equal(t, buf, Default())
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = New(&bytes.Buffer{}, "", LevelInfo)
	var _ Logger = NewEnvLogger("")
	var _ Logger = Noop()
	var _ Logger = NewBufferLogger()
}
