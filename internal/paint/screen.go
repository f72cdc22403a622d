// internal/paint/screen.go
package paint

import (
	"image/color"
	"math"

	"go-arcade/internal/config"

	"github.com/gogpu/gg"
)

// Stroke is one stamped brush position.
type Stroke struct {
	Pos       gg.Vec2
	Size      float64 // диаметр кисти
	Color     color.RGBA
	Connected bool // соединяется с предыдущим штрихом
}

// Stamper receives filled circles. The ebiten renderer and the PNG exporter
// both implement it.
type Stamper interface {
	Stamp(center gg.Vec2, radius float64, c color.RGBA)
}

// StamperFunc adapts a function to Stamper.
type StamperFunc func(center gg.Vec2, radius float64, c color.RGBA)

func (f StamperFunc) Stamp(center gg.Vec2, radius float64, c color.RGBA) {
	f(center, radius, c)
}

// Screen keeps the append-only stroke history.
type Screen struct {
	history          []Stroke
	lastWasConnected bool
}

func NewScreen() *Screen {
	return &Screen{}
}

func (s *Screen) AddStroke(pos gg.Vec2, size float64, c color.RGBA, connected bool) {
	s.history = append(s.history, Stroke{
		Pos:       pos,
		Size:      size,
		Color:     c,
		Connected: connected,
	})
	s.lastWasConnected = connected
}

// Clear удаляет всю историю штрихов
func (s *Screen) Clear() {
	s.history = s.history[:0]
	s.lastWasConnected = false
}

func (s *Screen) Len() int {
	return len(s.history)
}

// Strokes returns a copy of the history.
func (s *Screen) Strokes() []Stroke {
	return append([]Stroke(nil), s.history...)
}

func (s *Screen) LastWasConnected() bool {
	return s.lastWasConnected
}

// Draw replays the whole history into dst. A connected stroke is joined to
// the previous one by circles spaced at StampSpacing of its size.
func (s *Screen) Draw(dst Stamper) {
	for i, stroke := range s.history {
		radius := stroke.Size * 0.5
		if stroke.Connected && i > 0 {
			prev := s.history[i-1]
			s.fillGap(dst, prev.Pos, stroke)
		}
		dst.Stamp(stroke.Pos, radius, stroke.Color)
	}
}

func (s *Screen) fillGap(dst Stamper, from gg.Vec2, stroke Stroke) {
	if stroke.Size <= 0 {
		return
	}
	distance := stroke.Pos.Sub(from).Length()
	steps := int(math.Ceil(distance / (stroke.Size * config.StampSpacing)))
	if steps == 0 {
		return
	}
	radius := stroke.Size * 0.5
	for j := 0; j <= steps; j++ {
		t := float64(j) / float64(steps)
		dst.Stamp(from.Lerp(stroke.Pos, t), radius, stroke.Color)
	}
}
