// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-arcade/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect      image.Rectangle
	Text      string
	TextColor color.RGBA
	BgColor   color.RGBA
	Border    color.RGBA
	Face      font.Face
	hovered   bool
}

func NewButton(rect image.Rectangle, label string, face font.Face, bg, border, fg color.RGBA) *Button {
	return &Button{
		Rect:      rect,
		Text:      label,
		TextColor: fg,
		BgColor:   bg,
		Border:    border,
		Face:      face,
	}
}

// Update reports whether the button was clicked this frame.
func (b *Button) Update() bool {
	x, y := ebiten.CursorPosition()
	b.hovered = image.Pt(x, y).In(b.Rect)
	return b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.hovered {
		bg = render.DarkenColor(bg)
		bg.R, bg.G, bg.B = bg.R+64, bg.G+64, bg.B+64
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, b.Border, true)
	DrawCenteredLabel(screen, b.Text, b.Face, b.Rect, b.TextColor)
}
