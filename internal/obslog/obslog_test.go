package obslog_test

import (
	"testing"

	"mstop/internal/obslog"
)

// These just assert the logging calls never panic; output is terminal-
// dependent (ANSI colors) and not worth asserting against.
func TestLoggingCallsDoNotPanic(t *testing.T) {
	obslog.Banner("v0.1.0")
	obslog.Banner("")
	obslog.Section("Heuristic")
	obslog.Info("ALPHA", "tuning alpha")
	obslog.Success("ALPHA", "done")
	obslog.Warn("ALPHA", "no improvement found")
	obslog.Error("ALPHA", "failed")
	obslog.Stats("revenue", 123.45)
}
