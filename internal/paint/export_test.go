package paint

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
)

func TestRasterizeStampsStrokeColour(t *testing.T) {
	s := NewScreen()
	s.AddStroke(gg.V2(20, 20), 20, red, false)

	img, err := Exporter{Width: 64, Height: 48, Background: white}.Rasterize(s)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("expected 64x48, got %dx%d", b.Dx(), b.Dy())
	}

	r, g, b, _ := img.At(20, 20).RGBA()
	if r>>8 < 200 || g>>8 > 50 || b>>8 > 50 {
		t.Errorf("expected red at stroke centre, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(60, 44).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("expected white background, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestWritePNG(t *testing.T) {
	s := NewScreen()
	s.AddStroke(gg.V2(5, 5), 4, red, false)

	var buf bytes.Buffer
	if err := (Exporter{Width: 16, Height: 16, Background: white}).WritePNG(&buf, s); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("expected width 16, got %d", img.Bounds().Dx())
	}
}

func TestExportInvalidSize(t *testing.T) {
	if _, err := (Exporter{}).Rasterize(NewScreen()); err == nil {
		t.Error("expected error for zero-sized canvas")
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "canvas.png")
	err := Exporter{Width: 8, Height: 8, Background: white}.SavePNG(path, NewScreen())
	if err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
