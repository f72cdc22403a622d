// internal/ui/settings_panel.go
package ui

import (
	"fmt"
	"image"

	"go-arcade/internal/config"
	"go-arcade/internal/paint"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelPadding = 10
	swatchSize   = 20
	swatchGap    = 5
	buttonWidth  = 80
	buttonHeight = 24
)

// SettingsPanel is the fixed brush settings window: size slider, palette,
// Clear, Eraser and Save.
type SettingsPanel struct {
	rect      image.Rectangle
	theme     config.Theme
	face      font.Face
	slider    *Slider
	swatches  []*Swatch
	clear     *Button
	eraser    *Button
	save      *Button
	indicator *BrushIndicator
}

func NewSettingsPanel(theme config.Theme, face font.Face) *SettingsPanel {
	rect := image.Rect(
		config.SettingsPanelX,
		config.SettingsPanelY,
		config.SettingsPanelX+config.SettingsPanelWidth,
		config.SettingsPanelY+config.SettingsPanelHeight,
	)
	left := rect.Min.X + panelPadding

	p := &SettingsPanel{
		rect:  rect,
		theme: theme,
		face:  face,
	}
	p.slider = NewSlider(image.Rect(left+45, rect.Min.Y+38, left+145, rect.Min.Y+50),
		config.BrushMinSize, config.BrushMaxSize, theme.PanelBorder, theme.Text)

	for i, c := range theme.Palette {
		x := left + i*(swatchSize+swatchGap)
		y := rect.Min.Y + 62
		p.swatches = append(p.swatches, &Swatch{Rect: image.Rect(x, y, x+swatchSize, y+swatchSize), Color: c})
	}

	row := rect.Min.Y + 95
	p.clear = NewButton(image.Rect(left, row, left+buttonWidth, row+buttonHeight),
		"Clear", face, theme.Button, theme.PanelBorder, theme.Text)
	p.eraser = NewButton(image.Rect(left+buttonWidth+10, row, left+2*buttonWidth+10, row+buttonHeight),
		"Eraser", face, theme.Button, theme.PanelBorder, theme.Text)
	row += buttonHeight + 10
	p.save = NewButton(image.Rect(left, row, left+buttonWidth, row+buttonHeight),
		"Save PNG", face, theme.Button, theme.PanelBorder, theme.Text)
	p.indicator = NewBrushIndicator(float32(rect.Max.X-40), float32(row+buttonHeight/2), theme.PanelBorder)
	return p
}

// Contains reports whether screen point (x, y) is over the panel.
func (p *SettingsPanel) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.rect)
}

// Captures reports whether the panel owns the pointer this frame.
func (p *SettingsPanel) Captures(x, y int) bool {
	return p.Contains(x, y) || p.slider.Dragging()
}

// Update applies widget clicks and keyboard shortcuts to s.
func (p *SettingsPanel) Update(s *paint.Settings, ctrl bool) {
	if v, ok := p.slider.Update(); ok {
		s.SetSize(v)
	}
	for _, sw := range p.swatches {
		if sw.Update() {
			s.SelectColor(sw.Color)
		}
	}
	if p.clear.Update() {
		s.RequestClear()
	}
	if p.eraser.Update() {
		s.Eraser()
	}
	if p.save.Update() {
		s.RequestExport()
	}

	// Горячие клавиши
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.RequestExport()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		s.Grow(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		s.Grow(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		s.Eraser()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.RequestClear()
	}
}

func (p *SettingsPanel) Draw(screen *ebiten.Image, s *paint.Settings) {
	x, y := float32(p.rect.Min.X), float32(p.rect.Min.Y)
	w, h := float32(p.rect.Dx()), float32(p.rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, p.theme.Panel, true)
	vector.StrokeRect(screen, x, y, w, h, 2, p.theme.PanelBorder, true)

	left := p.rect.Min.X + panelPadding
	DrawLabel(screen, "Brush Settings", p.face, left, p.rect.Min.Y+8, p.theme.Text)
	DrawLabel(screen, "Size:", p.face, left, p.rect.Min.Y+37, p.theme.Text)
	p.slider.Draw(screen, s.BrushSize)
	DrawLabel(screen, fmt.Sprintf("%.0f px", s.BrushSize), p.face, p.slider.Rect.Max.X+10, p.rect.Min.Y+37, p.theme.Text)

	for _, sw := range p.swatches {
		sw.Draw(screen, sw.Color == s.BrushColor)
	}
	p.clear.Draw(screen)
	p.eraser.Draw(screen)
	p.save.Draw(screen)
	p.indicator.Draw(screen, s.BrushSize, s.BrushColor)
}
