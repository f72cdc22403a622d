// internal/paint/brush.go
package paint

import (
	"image/color"

	"go-arcade/internal/config"

	"github.com/gogpu/gg"
)

// Pointer is the left mouse button state for one frame.
type Pointer struct {
	Pos      gg.Vec2
	Pressed  bool // нажата в этом кадре
	Down     bool // удерживается
	Released bool // отпущена в этом кадре
}

// Brush turns pointer input into strokes on a Screen.
type Brush struct {
	Color   color.RGBA
	Size    float64
	Pos     gg.Vec2
	Drawing bool
}

func NewBrush() *Brush {
	return &Brush{
		Color: color.RGBA{0, 0, 0, 255},
		Size:  config.BrushDefaultSize,
	}
}

// Update reports whether a new line was started this frame.
func (b *Brush) Update(screen *Screen, p Pointer, c color.RGBA, size float64) bool {
	b.Pos = p.Pos
	b.Color = c
	b.Size = size

	started := false
	if p.Pressed {
		b.Drawing = true
		screen.AddStroke(p.Pos, b.Size, b.Color, false)
		started = true
	}

	if b.Drawing && p.Down {
		screen.AddStroke(p.Pos, b.Size, b.Color, true)
	}

	if p.Released {
		b.Drawing = false
	}
	return started
}
