// internal/paint/status.go
package paint

import (
	"fmt"
	"log/slog"

	"go-arcade/internal/event"
)

// Status listens to canvas events, logs them and keeps a one-line message
// for the HUD.
type Status struct {
	logger  *slog.Logger
	message string
}

var _ event.Listener = (*Status)(nil)

func NewStatus(logger *slog.Logger) *Status {
	if logger == nil {
		logger = slog.Default()
	}
	return &Status{logger: logger}
}

func (s *Status) OnEvent(e event.Event) {
	switch e.Type {
	case event.StrokeStarted:
		s.logger.Debug("stroke started", "strokes", e.Strokes)
	case event.CanvasCleared:
		s.logger.Info("canvas cleared")
		s.message = "Canvas cleared"
	case event.CanvasExported:
		s.logger.Info("canvas exported", "path", e.Path, "strokes", e.Strokes)
		s.message = fmt.Sprintf("Saved %s", e.Path)
	case event.ExportFailed:
		s.logger.Error("canvas export failed", "path", e.Path, "err", e.Err)
		s.message = fmt.Sprintf("Export failed: %v", e.Err)
	}
}

// Message returns the latest user-facing status, empty if none.
func (s *Status) Message() string {
	return s.message
}
