package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// CaptureLogs sends the default slog logger to a buffer, keeping records at
// level and above, and restores the previous logger when the test ends.
// Tests using it must not run in parallel.
func CaptureLogs(t testing.TB, level slog.Level) *bytes.Buffer {
	t.Helper()

	prev := slog.Default()
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}
