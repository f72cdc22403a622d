// cmd/paint/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"go-arcade/internal/assets"
	"go-arcade/internal/config"
	"go-arcade/internal/event"
	"go-arcade/internal/input"
	"go-arcade/internal/logging"
	"go-arcade/internal/paint"
	"go-arcade/internal/ui"
	"go-arcade/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

type PaintApp struct {
	controller *paint.Controller
	panel      *ui.SettingsPanel
	status     *paint.Status
	theme      config.Theme
	face       font.Face
}

func (a *PaintApp) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Сначала панель настроек, затем кисть
	a.panel.Update(a.controller.Settings, input.ControlPressed())

	p := input.Pointer()
	captured := a.panel.Captures(int(p.Pos.X), int(p.Pos.Y))
	a.controller.Update(p, captured)
	return nil
}

func (a *PaintApp) Draw(screen *ebiten.Image) {
	screen.Fill(a.theme.Canvas)
	a.controller.Draw(render.NewCanvasStamper(screen))
	a.panel.Draw(screen, a.controller.Settings)

	if msg := a.status.Message(); msg != "" {
		ui.DrawLabel(screen, msg, a.face, config.SettingsPanelX, config.PaintScreenHeight-24, a.theme.Text)
	}
}

func (a *PaintApp) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.PaintScreenWidth, config.PaintScreenHeight
}

func newPaintApp(theme config.Theme, exportPath string, logger *slog.Logger) (*PaintApp, error) {
	fonts, err := assets.NewFontManager()
	if err != nil {
		return nil, err
	}
	face, err := fonts.Face(config.HUDFontSize)
	if err != nil {
		return nil, err
	}

	dispatcher := event.NewDispatcher()
	status := paint.NewStatus(logger)
	dispatcher.SubscribeAll(status, event.Canvas...)

	exporter := paint.Exporter{
		Width:      config.PaintScreenWidth,
		Height:     config.PaintScreenHeight,
		Background: theme.Canvas,
	}
	controller := paint.NewController(paint.NewSettings(theme.Eraser), exporter, exportPath, dispatcher)

	return &PaintApp{
		controller: controller,
		panel:      ui.NewSettingsPanel(theme, face),
		status:     status,
		theme:      theme,
		face:       face,
	}, nil
}

func main() {
	themePath := flag.String("theme", "", "path to a JSON colour theme")
	exportPath := flag.String("out", config.DefaultExportPath, "PNG file written by Save / Ctrl+S")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := logging.New(os.Stderr, *verbose)

	theme := config.DefaultPaintTheme()
	if *themePath != "" {
		var err error
		if theme, err = config.LoadTheme(*themePath, theme); err != nil {
			log.Fatal(err)
		}
	}

	app, err := newPaintApp(theme, *exportPath, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.PaintScreenWidth, config.PaintScreenHeight)
	ebiten.SetWindowTitle("Paint")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
