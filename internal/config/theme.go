// internal/config/theme.go
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// Theme holds every colour the hosts need. It is built once at startup and
// passed by value, nothing mutates it afterwards.
type Theme struct {
	Background color.RGBA `json:"background"`
	Ball       color.RGBA `json:"ball"`
	Paddle     color.RGBA `json:"paddle"`
	Divider    color.RGBA `json:"divider"`
	Text       color.RGBA `json:"text"`
	Overlay    color.RGBA `json:"overlay"`

	Canvas      color.RGBA   `json:"canvas"`
	Panel       color.RGBA   `json:"panel"`
	PanelBorder color.RGBA   `json:"panel_border"`
	Button      color.RGBA   `json:"button"`
	Eraser      color.RGBA   `json:"eraser"`
	Palette     []color.RGBA `json:"palette"`
}

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// DefaultPongTheme: белые объекты на тёмном фоне
func DefaultPongTheme() Theme {
	return Theme{
		Background: color.RGBA{20, 20, 30, 255},
		Ball:       white,
		Paddle:     white,
		Divider:    white,
		Text:       color.RGBA{240, 240, 240, 255},
		Overlay:    color.RGBA{0, 0, 0, 128},
	}
}

// DefaultPaintTheme is a white canvas with a light settings panel.
func DefaultPaintTheme() Theme {
	return Theme{
		Background:  white,
		Text:        color.RGBA{20, 20, 30, 255},
		Overlay:     color.RGBA{0, 0, 0, 128},
		Canvas:      white,
		Panel:       color.RGBA{235, 235, 240, 240},
		PanelBorder: color.RGBA{90, 90, 100, 255},
		Button:      color.RGBA{200, 200, 210, 255},
		Eraser:      white,
		Palette: []color.RGBA{
			black,
			{220, 60, 60, 255},
			{50, 205, 50, 255},
			{50, 100, 255, 255},
			{255, 215, 0, 255},
			{180, 50, 230, 255},
			{255, 140, 0, 255},
			{128, 128, 128, 255},
		},
	}
}

// LoadTheme reads a JSON theme file on top of base. Fields missing from the
// file keep the values from base.
func LoadTheme(path string, base Theme) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read theme file: %w", err)
	}

	theme := base
	theme.Palette = append([]color.RGBA(nil), base.Palette...)
	if err := json.Unmarshal(data, &theme); err != nil {
		return base, fmt.Errorf("failed to unmarshal theme %s: %w", path, err)
	}
	if len(theme.Palette) == 0 {
		theme.Palette = base.Palette
	}
	return theme, nil
}
