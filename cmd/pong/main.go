// cmd/pong/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-arcade/internal/assets"
	"go-arcade/internal/config"
	"go-arcade/internal/logging"
	"go-arcade/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.BoardWidth), int(config.BoardHeight)
}

func main() {
	themePath := flag.String("theme", "", "path to a JSON colour theme")
	verbose := flag.Bool("v", false, "enable debug logging")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger := logging.New(os.Stderr, *verbose)

	if *pprofAddr != "" {
		go func() {
			logger.Warn("pprof server stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	theme := config.DefaultPongTheme()
	if *themePath != "" {
		var err error
		if theme, err = config.LoadTheme(*themePath, theme); err != nil {
			log.Fatal(err)
		}
		logger.Info("theme loaded", "path", *themePath)
	}

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, theme, fonts.MustFace(config.PauseFontSize), logger))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(config.BoardWidth), int(config.BoardHeight))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(config.PongTPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	logger.Info("bye")
}
