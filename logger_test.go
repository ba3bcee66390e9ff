package videotext

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level), "level %v", level)
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("key", "val")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("group"))
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		assert.False(t, l.Enabled(context.Background(), level), "level %v", level)
	}
}

// captureLogs routes videotext logging into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)
	Logger().Info("hello from test")
	assert.Contains(t, buf.String(), "hello from test")
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(nopHandler{}))
		}()
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent")
		}()
	}
	wg.Wait()
	assert.NotNil(t, Logger())
}
