// cmd/pong_raylib/main.go
package main

import (
	"flag"
	"image/color"
	"log"
	"os"

	"go-arcade/internal/config"
	"go-arcade/internal/logging"
	"go-arcade/internal/pong"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var raylibKeys = map[pong.Key]int32{
	pong.KeyW:         rl.KeyW,
	pong.KeyS:         rl.KeyS,
	pong.KeyArrowUp:   rl.KeyUp,
	pong.KeyArrowDown: rl.KeyDown,
}

// raylibInput делает снимок клавиш Raylib для одного тика
func raylibInput() pong.KeySet {
	held := make(pong.KeySet, len(raylibKeys))
	for k, key := range raylibKeys {
		if rl.IsKeyDown(key) {
			held[k] = true
		}
	}
	return held
}

// Helper to convert color.RGBA to rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

func drawEntities(entities []pong.Entity, theme config.Theme) {
	for _, e := range entities {
		switch e.Kind {
		case pong.KindBoard, pong.KindPaddle:
			c := theme.Paddle
			if e.Kind == pong.KindBoard {
				c = theme.Divider
			}
			rl.DrawRectangleV(
				rl.NewVector2(float32(e.Rect.Min.X), float32(e.Rect.Min.Y)),
				rl.NewVector2(float32(e.Rect.Width()), float32(e.Rect.Height())),
				colorToRL(c))
		case pong.KindBall:
			rl.DrawCircleV(
				rl.NewVector2(float32(e.Circle.Center.X), float32(e.Circle.Center.Y)),
				float32(e.Circle.Radius), colorToRL(theme.Ball))
		}
	}
}

func main() {
	themePath := flag.String("theme", "", "path to a JSON colour theme")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := logging.New(os.Stderr, *verbose)

	theme := config.DefaultPongTheme()
	if *themePath != "" {
		var err error
		if theme, err = config.LoadTheme(*themePath, theme); err != nil {
			log.Fatal(err)
		}
	}

	rl.InitWindow(int32(config.BoardWidth), int32(config.BoardHeight), "Pong | W/S - left, Up/Down - right, P - pause")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.PongTPS)

	controller := pong.NewController()
	paused := false
	logger.Debug("raylib host started")

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}
		if !paused {
			controller.Update(raylibInput())
		}

		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(theme.Background))
		drawEntities(controller.Entities(), theme)

		if paused {
			rl.DrawRectangle(0, 0, int32(config.BoardWidth), int32(config.BoardHeight), colorToRL(theme.Overlay))
			const pauseText = "PAUSED"
			fontSize := int32(config.PauseFontSize)
			textWidth := rl.MeasureText(pauseText, fontSize)
			rl.DrawText(pauseText, (int32(config.BoardWidth)-textWidth)/2, int32(config.BoardHeight)/2-fontSize/2, fontSize, colorToRL(theme.Text))
		}
		rl.EndDrawing()
	}
	logger.Info("bye", "ticks", controller.Ticks())
}
