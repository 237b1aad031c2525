package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsSameInstance(t *testing.T) {
	l1 := Get(LevelError)
	l2 := Get(LevelDebug)
	require.NotNil(t, l1)
	assert.Same(t, l1, l2)
}

func TestNew_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr := New(&buf, LevelInfo)

	lgr.V(1).Info("hidden")
	lgr.Info("shown", "rows", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry[MessageKey])
	assert.Equal(t, float64(3), entry["rows"])
	assert.Contains(t, entry, TimeStampKey)
	assert.Equal(t, Version, entry[VersionKey])
}

func TestNew_DebugLevelEnablesVerbosity(t *testing.T) {
	var buf bytes.Buffer
	lgr := New(&buf, LevelDebug)
	lgr.V(1).Info("debug detail")
	assert.Contains(t, buf.String(), "debug detail")
}

func TestGetFallsBackToNoop(t *testing.T) {
	Get(LevelError)
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	assert.Same(t, &defaultNoopLogger, Get(LevelDebug))
}

func TestIsIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.True(t, isIgnorableSyncError(syscall.EINVAL))
	assert.True(t, isIgnorableSyncError(errors.New("The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}

func TestSyncDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, Sync)
}
