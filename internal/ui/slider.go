// internal/ui/slider.go
package ui

import (
	"image"
	"image/color"

	"go-arcade/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const sliderKnobRadius = 6

// Slider is a horizontal slider over [Min, Max].
type Slider struct {
	Rect     image.Rectangle
	Min, Max float64
	Track    color.RGBA
	Knob     color.RGBA
	dragging bool
}

func NewSlider(rect image.Rectangle, lo, hi float64, track, knob color.RGBA) *Slider {
	return &Slider{Rect: rect, Min: lo, Max: hi, Track: track, Knob: knob}
}

// Update returns the new value while the knob is dragged and ok=false
// otherwise.
func (s *Slider) Update() (value float64, ok bool) {
	x, y := ebiten.CursorPosition()
	hit := s.Rect.Inset(-sliderKnobRadius)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && image.Pt(x, y).In(hit) {
		s.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return 0, false
	}
	t := utils.Clamp(utils.InvLerp(float64(s.Rect.Min.X), float64(s.Rect.Max.X), float64(x)), 0, 1)
	return utils.Lerp(s.Min, s.Max, t), true
}

// Dragging reports whether the knob is held.
func (s *Slider) Dragging() bool {
	return s.dragging
}

func (s *Slider) Draw(screen *ebiten.Image, value float64) {
	cy := float32(s.Rect.Min.Y) + float32(s.Rect.Dy())/2
	vector.StrokeLine(screen, float32(s.Rect.Min.X), cy, float32(s.Rect.Max.X), cy, 3, s.Track, true)

	t := utils.Clamp(utils.InvLerp(s.Min, s.Max, value), 0, 1)
	kx := float32(utils.Lerp(float64(s.Rect.Min.X), float64(s.Rect.Max.X), t))
	vector.DrawFilledCircle(screen, kx, cy, sliderKnobRadius, s.Knob, true)
}
