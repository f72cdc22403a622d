// internal/input/ebiten.go
package input

import (
	"go-arcade/internal/paint"
	"go-arcade/internal/pong"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var pongKeys = map[pong.Key]ebiten.Key{
	pong.KeyW:         ebiten.KeyW,
	pong.KeyS:         ebiten.KeyS,
	pong.KeyArrowUp:   ebiten.KeyArrowUp,
	pong.KeyArrowDown: ebiten.KeyArrowDown,
}

// Snapshot copies the current key state so the whole tick sees one frame.
func Snapshot() pong.KeySet {
	held := make(pong.KeySet, len(pongKeys))
	for k, key := range pongKeys {
		if ebiten.IsKeyPressed(key) {
			held[k] = true
		}
	}
	return held
}

// Pointer возвращает состояние левой кнопки мыши за текущий кадр
func Pointer() paint.Pointer {
	x, y := ebiten.CursorPosition()
	return paint.Pointer{
		Pos:      gg.V2(float64(x), float64(y)),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// ControlPressed reports whether either Ctrl key is held.
func ControlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
}
