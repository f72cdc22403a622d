// internal/assets/font_manager.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontManager парсит встроенный шрифт один раз и кэширует начертания по размеру.
type FontManager struct {
	font  *sfnt.Font
	faces map[float64]font.Face
}

// NewFontManager parses the embedded Go Regular font.
func NewFontManager() (*FontManager, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	return &FontManager{
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns the face for size, creating it on first use.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpt face: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// MustFace is Face for sizes known at compile time.
func (m *FontManager) MustFace(size float64) font.Face {
	face, err := m.Face(size)
	if err != nil {
		panic(err)
	}
	return face
}
