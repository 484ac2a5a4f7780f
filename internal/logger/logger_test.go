package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "shell"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"variant": "anchor", "phase": "resolve"})
	log.Info("resolved schema")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "resolved schema", entry["message"])
	require.Equal(t, "anchor", entry["variant"])
	require.Equal(t, "resolve", entry["phase"])
	require.Equal(t, "shell", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.False(t, log.DebugEnabled())
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	require.True(t, log.DebugEnabled())

	log = log.With("key", "href")
	log.Error(errors.New("boom"), "validation failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "validation failed", entry["message"])
	require.Equal(t, "href", entry["key"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("careful")
	require.Contains(t, buf.String(), "careful")
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.NotPanics(t, func() {
		nilLog.Info("x")
		nilLog.Debug("x")
		nilLog.Warn("x")
		nilLog.Error(errors.New("x"), "x")
		require.Nil(t, nilLog.With("k", "v"))
		require.Nil(t, nilLog.WithFields(map[string]any{"k": "v"}))
	})

	nop := Nop()
	require.False(t, nop.DebugEnabled())
	require.NotPanics(t, func() { nop.Info("discarded") })
}
