// internal/paint/settings.go
package paint

import (
	"image/color"

	"go-arcade/internal/config"
	"go-arcade/internal/utils"
)

// Actions are the one-shot requests collected during a frame.
type Actions struct {
	Clear  bool
	Export bool
}

// Settings хранит размер и цвет кисти и разовые запросы из панели
type Settings struct {
	BrushSize  float64
	BrushColor color.RGBA

	eraser  color.RGBA
	pending Actions
}

func NewSettings(eraser color.RGBA) *Settings {
	return &Settings{
		BrushSize:  config.BrushDefaultSize,
		BrushColor: color.RGBA{0, 0, 0, 255},
		eraser:     eraser,
	}
}

// SetSize clamps size into the slider range.
func (s *Settings) SetSize(size float64) {
	s.BrushSize = utils.Clamp(size, config.BrushMinSize, config.BrushMaxSize)
}

func (s *Settings) Grow(delta float64) {
	s.SetSize(s.BrushSize + delta)
}

func (s *Settings) SelectColor(c color.RGBA) {
	s.BrushColor = c
}

// Eraser paints with the canvas colour at full size.
func (s *Settings) Eraser() {
	s.BrushColor = s.eraser
	s.BrushSize = config.EraserSize
}

func (s *Settings) RequestClear() {
	s.pending.Clear = true
}

func (s *Settings) RequestExport() {
	s.pending.Export = true
}

// TakeActions returns the requests made since the last call and resets them.
func (s *Settings) TakeActions() Actions {
	a := s.pending
	s.pending = Actions{}
	return a
}
