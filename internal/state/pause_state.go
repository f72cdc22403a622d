// internal/state/pause_state.go
package state

import (
	"image"

	"go-arcade/internal/config"
	"go-arcade/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the previous state and draws it under a dim overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	theme         config.Theme
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, theme config.Theme, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		theme:         theme,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(_ float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), s.theme.Overlay, false)
	if s.face != nil {
		ui.DrawCenteredLabel(screen, "PAUSED", s.face, image.Rect(0, 0, w, h), s.theme.Text)
	}
}

func (s *PauseState) Exit() {}
