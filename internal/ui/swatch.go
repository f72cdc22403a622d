// internal/ui/swatch.go
package ui

import (
	"image"
	"image/color"

	"go-arcade/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Swatch is one clickable colour of the palette.
type Swatch struct {
	Rect  image.Rectangle
	Color color.RGBA
}

func (s *Swatch) Update() bool {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(s.Rect) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (s *Swatch) Draw(screen *ebiten.Image, selected bool) {
	x, y := float32(s.Rect.Min.X), float32(s.Rect.Min.Y)
	w, h := float32(s.Rect.Dx()), float32(s.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, s.Color, false)
	if selected {
		vector.StrokeRect(screen, x-1, y-1, w+2, h+2, 2, render.Contrast(s.Color), false)
	}
}
