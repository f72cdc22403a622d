// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BrushIndicator previews the brush and pulses briefly after it changes.
type BrushIndicator struct {
	X, Y       float32
	Border     color.RGBA
	LastChange time.Time
	lastSize   float64
	lastColor  color.RGBA
}

func NewBrushIndicator(x, y float32, border color.RGBA) *BrushIndicator {
	return &BrushIndicator{X: x, Y: y, Border: border}
}

// Draw отрисовывает индикатор, радиус равен половине размера кисти
func (i *BrushIndicator) Draw(screen *ebiten.Image, size float64, c color.RGBA) {
	if size != i.lastSize || c != i.lastColor {
		i.LastChange = time.Now()
		i.lastSize, i.lastColor = size, c
	}
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := float32(size * 0.5 * scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, radius, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, radius+1, 1, i.Border, true)
}
