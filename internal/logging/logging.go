// Package logging configures the debug logger. The TUI owns the terminal,
// so log output goes to a file under the state dir, never to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"clipkit/internal/dirs"
)

// New returns a logger. With debug disabled, it writes nowhere. With debug
// enabled, it appends to clipkit.log in the state dir; if that file cannot
// be opened the logger silently falls back to a no-op writer rather than
// corrupting the TUI.
func New(debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard)
	}
	w := io.Writer(io.Discard)
	if dir, err := dirs.StateDir(); err == nil {
		_ = dirs.Ensure(dir)
		path := filepath.Join(dir, "clipkit.log")
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = f
		}
	}
	logger := log.New(w)
	logger.SetLevel(log.DebugLevel)
	logger.SetReportTimestamp(true)
	return logger
}
