// internal/event/types.go
package event

const (
	StrokeStarted  EventType = "StrokeStarted"  // начата новая линия
	CanvasCleared  EventType = "CanvasCleared"  // холст очищен
	CanvasExported EventType = "CanvasExported" // PNG сохранён
	ExportFailed   EventType = "ExportFailed"
)

// Canvas lists every event the paint controller emits.
var Canvas = []EventType{StrokeStarted, CanvasCleared, CanvasExported, ExportFailed}
