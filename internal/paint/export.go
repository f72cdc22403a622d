// internal/paint/export.go
package paint

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// Exporter rasterises a stroke history offline with the gg software renderer.
type Exporter struct {
	Width      int
	Height     int
	Background color.RGBA
}

type ggStamper struct {
	dc  *gg.Context
	err error
}

func (s *ggStamper) Stamp(center gg.Vec2, radius float64, c color.RGBA) {
	if s.err != nil {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawCircle(center.X, center.Y, radius)
	if err := s.dc.Fill(); err != nil {
		s.err = fmt.Errorf("fill stamp at (%.1f, %.1f): %w", center.X, center.Y, err)
	}
}

func (e Exporter) render(screen *Screen) (*gg.Context, error) {
	if e.Width <= 0 || e.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", e.Width, e.Height)
	}
	dc := gg.NewContext(e.Width, e.Height)
	dc.ClearWithColor(gg.FromColor(e.Background))

	st := &ggStamper{dc: dc}
	screen.Draw(st)
	if st.err != nil {
		dc.Close()
		return nil, st.err
	}
	return dc, nil
}

// Rasterize returns the canvas as an image.
func (e Exporter) Rasterize(screen *Screen) (image.Image, error) {
	dc, err := e.render(screen)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG encodes the canvas as PNG into w.
func (e Exporter) WritePNG(w io.Writer, screen *Screen) error {
	dc, err := e.render(screen)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode canvas: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path.
func (e Exporter) SavePNG(path string, screen *Screen) error {
	dc, err := e.render(screen)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save canvas to %s: %w", path, err)
	}
	return nil
}
