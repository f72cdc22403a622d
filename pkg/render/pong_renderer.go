// pkg/render/pong_renderer.go
package render

import (
	"image/color"

	"go-arcade/internal/config"
	"go-arcade/internal/pong"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PongRenderer draws the playfield entities with the theme colours.
type PongRenderer struct {
	theme config.Theme
}

func NewPongRenderer(theme config.Theme) *PongRenderer {
	return &PongRenderer{theme: theme}
}

func (r *PongRenderer) Draw(screen *ebiten.Image, entities []pong.Entity) {
	screen.Fill(r.theme.Background)
	for _, e := range entities {
		switch e.Kind {
		case pong.KindBoard:
			drawRect(screen, e.Rect, r.theme.Divider)
		case pong.KindPaddle:
			drawRect(screen, e.Rect, r.theme.Paddle)
		case pong.KindBall:
			vector.DrawFilledCircle(screen,
				float32(e.Circle.Center.X), float32(e.Circle.Center.Y),
				float32(e.Circle.Radius), r.theme.Ball, true)
		}
	}
}

func drawRect(screen *ebiten.Image, rect pong.Rect, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Width()), float32(rect.Height()), c, false)
}
