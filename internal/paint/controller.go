// internal/paint/controller.go
package paint

import (
	"go-arcade/internal/event"
)

// Controller wires the brush, the stroke history and the settings together
// and reports canvas changes through the dispatcher.
type Controller struct {
	Brush    *Brush
	Screen   *Screen
	Settings *Settings

	exporter   Exporter
	exportPath string
	events     *event.Dispatcher
}

func NewController(settings *Settings, exporter Exporter, exportPath string, events *event.Dispatcher) *Controller {
	if settings == nil || events == nil {
		panic("paint controller requires settings and a dispatcher")
	}
	return &Controller{
		Brush:      NewBrush(),
		Screen:     NewScreen(),
		Settings:   settings,
		exporter:   exporter,
		exportPath: exportPath,
		events:     events,
	}
}

// Update runs one frame. The settings panel has already run for this frame;
// captured is true when the pointer is over the panel, in which case a press
// does not start a new line.
func (c *Controller) Update(p Pointer, captured bool) {
	if captured {
		p.Pressed = false
	}

	if c.Brush.Update(c.Screen, p, c.Settings.BrushColor, c.Settings.BrushSize) {
		c.events.Dispatch(event.Event{Type: event.StrokeStarted, Strokes: c.Screen.Len()})
	}

	actions := c.Settings.TakeActions()
	if actions.Clear {
		c.Screen.Clear()
		c.events.Dispatch(event.Event{Type: event.CanvasCleared})
	}
	if actions.Export {
		c.export()
	}
}

func (c *Controller) export() {
	if err := c.exporter.SavePNG(c.exportPath, c.Screen); err != nil {
		c.events.Dispatch(event.Event{Type: event.ExportFailed, Path: c.exportPath, Err: err})
		return
	}
	c.events.Dispatch(event.Event{Type: event.CanvasExported, Path: c.exportPath, Strokes: c.Screen.Len()})
}

// Draw replays the canvas into dst.
func (c *Controller) Draw(dst Stamper) {
	c.Screen.Draw(dst)
}
