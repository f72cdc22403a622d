// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"

	"github.com/gogpu/gg"
)

// New builds the text logger shared by the hosts and hands it to gg as well.
// verbose enables debug records.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger.With("component", "gg"))
	return logger
}
