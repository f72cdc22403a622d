// internal/state/play_state.go
package state

import (
	"fmt"
	"log/slog"

	"go-arcade/internal/config"
	"go-arcade/internal/input"
	"go-arcade/internal/pong"
	"go-arcade/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var _ State = (*PlayState)(nil)

// PlayState runs the Pong simulation, one controller tick per frame.
type PlayState struct {
	sm         *StateMachine
	controller *pong.Controller
	renderer   *render.PongRenderer
	theme      config.Theme
	pauseFace  font.Face
	logger     *slog.Logger
	showDebug  bool
}

func NewPlayState(sm *StateMachine, theme config.Theme, pauseFace font.Face, logger *slog.Logger) *PlayState {
	if sm == nil {
		panic("state machine cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayState{
		sm:         sm,
		controller: pong.NewController(),
		renderer:   render.NewPongRenderer(theme),
		theme:      theme,
		pauseFace:  pauseFace,
		logger:     logger,
	}
}

func (s *PlayState) Enter() {
	s.logger.Debug("play state entered", "tick", s.controller.Ticks())
}

// Update ignores deltaTime: the simulation moves a fixed step per tick.
func (s *PlayState) Update(_ float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.RequestQuit()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyF9):
		s.sm.SetState(NewPauseState(s.sm, s, s.theme, s.pauseFace))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		s.showDebug = !s.showDebug
	}

	s.controller.Update(input.Snapshot())
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.controller.Entities())

	if s.showDebug {
		ball := s.controller.Ball()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("tick %d  ball (%.0f, %.0f) v(%.0f, %.0f)  TPS %.0f",
			s.controller.Ticks(), ball.Position().X, ball.Position().Y,
			ball.Velocity().X, ball.Velocity().Y, ebiten.ActualTPS()))
	}
}

func (s *PlayState) Exit() {}

