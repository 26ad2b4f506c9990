package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"trio/internal/config"
)

func observe(t *testing.T, c config.LoggingConfig) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	InitializeWith(zap.New(core), c)
	t.Cleanup(Reset)
	return logs
}

func TestGet_NoopWhenDebugModeOff(t *testing.T) {
	logs := observe(t, config.LoggingConfig{DebugMode: false})

	Get(CategoryMenu).Info("dropped")
	assert.Equal(t, 0, logs.Len())
	assert.False(t, IsDebugMode())
}

func TestGet_NamedLoggerCarriesRunID(t *testing.T) {
	logs := observe(t, config.LoggingConfig{DebugMode: true})

	Get(CategoryTasks).Info("hello", zap.Int("n", 1))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks", entries[0].LoggerName)
	ctx := entries[0].ContextMap()
	assert.Equal(t, RunID(), ctx["run_id"])
	assert.EqualValues(t, 1, ctx["n"])
}

func TestGet_CategoryFilter(t *testing.T) {
	logs := observe(t, config.LoggingConfig{
		DebugMode:  true,
		Categories: map[string]bool{"console": false},
	})

	Get(CategoryConsole).Info("dropped")
	Get(CategoryMenu).Info("kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestGet_ReturnsCachedLogger(t *testing.T) {
	observe(t, config.LoggingConfig{DebugMode: true})
	assert.Same(t, Get(CategoryUI), Get(CategoryUI))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitialize_WritesJSONFile(t *testing.T) {
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "trio.log")

	err := Initialize(config.LoggingConfig{
		DebugMode: true,
		Level:     "debug",
		Format:    "json",
		File:      path,
	})
	require.NoError(t, err)

	Get(CategoryMenu).Info("selection made")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"selection made"`), string(data))
	assert.Contains(t, string(data), RunID())
}

func TestInitialize_DisabledIsNoop(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Initialize(config.LoggingConfig{DebugMode: false, Level: "bogus"}))
	assert.False(t, IsDebugMode())
}

func TestAudit(t *testing.T) {
	logs := observe(t, config.LoggingConfig{DebugMode: true})

	done := AuditTimer("digits")
	done("duplicate", "1")
	AuditFailure("digits", errors.New("eof"))

	entries := logs.FilterLoggerName("audit").All()
	require.Len(t, entries, 3)

	assert.Equal(t, "task_start", entries[0].ContextMap()["event"])

	complete := entries[1].ContextMap()
	assert.Equal(t, "task_complete", complete["event"])
	assert.Equal(t, "duplicate", complete["outcome"])
	assert.Equal(t, "1", complete["detail"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "eof", entries[2].ContextMap()["error"])
}
