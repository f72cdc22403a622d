// pkg/render/canvas_renderer.go
package render

import (
	"image/color"

	"go-arcade/internal/paint"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CanvasStamper draws paint stamps onto an ebiten image.
type CanvasStamper struct {
	dst *ebiten.Image
}

var _ paint.Stamper = CanvasStamper{}

func NewCanvasStamper(dst *ebiten.Image) CanvasStamper {
	return CanvasStamper{dst: dst}
}

func (s CanvasStamper) Stamp(center gg.Vec2, radius float64, c color.RGBA) {
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}
