package paint

import (
	"testing"

	"go-arcade/internal/config"

	"github.com/gogpu/gg"
)

func TestBrushLifecycle(t *testing.T) {
	s := NewScreen()
	b := NewBrush()

	if started := b.Update(s, Pointer{Pos: gg.V2(10, 10), Pressed: true, Down: true}, red, 8); !started {
		t.Error("expected press to start a line")
	}
	if !b.Drawing {
		t.Fatal("brush not drawing after press")
	}
	// нажатие даёт несвязанный штрих и связанный в той же точке
	strokes := s.Strokes()
	if len(strokes) != 2 || strokes[0].Connected || !strokes[1].Connected {
		t.Fatalf("unexpected strokes after press: %+v", strokes)
	}

	b.Update(s, Pointer{Pos: gg.V2(20, 10), Down: true}, red, 8)
	if s.Len() != 3 {
		t.Errorf("expected 3 strokes while dragging, got %d", s.Len())
	}

	b.Update(s, Pointer{Pos: gg.V2(20, 10), Released: true}, red, 8)
	if b.Drawing {
		t.Error("brush still drawing after release")
	}

	b.Update(s, Pointer{Pos: gg.V2(30, 10)}, red, 8)
	if s.Len() != 3 {
		t.Errorf("hover added strokes: %d", s.Len())
	}
}

func TestBrushTakesSettings(t *testing.T) {
	s := NewScreen()
	b := NewBrush()
	if b.Size != config.BrushDefaultSize {
		t.Errorf("expected default size %v, got %v", config.BrushDefaultSize, b.Size)
	}

	b.Update(s, Pointer{Pos: gg.V2(1, 2), Pressed: true}, red, 25)
	st := s.Strokes()[0]
	if st.Color != red || st.Size != 25 || st.Pos != gg.V2(1, 2) {
		t.Errorf("stroke does not carry brush settings: %+v", st)
	}
}
