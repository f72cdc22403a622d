// internal/ui/label.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawLabel draws s left-aligned with its top edge at (x, y).
func DrawLabel(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x, y-bounds.Min.Y, c)
}

// DrawCenteredLabel centres s inside rect.
func DrawCenteredLabel(screen *ebiten.Image, s string, face font.Face, rect image.Rectangle, c color.Color) {
	bounds := text.BoundString(face, s)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, c)
}
