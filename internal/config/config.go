// internal/config/config.go
package config

const (
	// Pong playfield
	BoardWidth  = 600.0
	BoardHeight = 600.0

	PaddleWidth   = 10.0
	PaddleHeight  = 100.0
	PaddleSpeed   = 5.0  // пикселей за тик
	PaddleOffsetX = 20.0 // отступ ракетки от края поля

	BallRadius = 10.0
	BallSpeed  = 3.0 // пикселей за тик по каждой оси

	// Центр минус 5 пикселей, как у разделителя
	BallStartX = BoardWidth/2 - 5
	BallStartY = BoardHeight/2 - 5

	DividerHalfWidth = 5.0

	PongTPS      = 60
	MaxDeltaTime = 0.06

	// Paint window
	PaintScreenWidth  = 1280
	PaintScreenHeight = 720

	BrushDefaultSize = 10.0
	BrushMinSize     = 1.0
	BrushMaxSize     = 50.0
	EraserSize       = 50.0

	// Доля диаметра кисти, задающая шаг интерполяции между точками
	StampSpacing = 0.3

	SettingsPanelX      = 10
	SettingsPanelY      = 10
	SettingsPanelWidth  = 220
	SettingsPanelHeight = 170

	HUDFontSize   = 14.0
	PauseFontSize = 40.0

	DefaultExportPath = "canvas.png"
)

// LeftPaddleStart возвращает верхний левый угол левой ракетки
func LeftPaddleStart() (x, y float64) {
	return PaddleOffsetX, BoardHeight/2 - PaddleHeight/2
}

// RightPaddleStart returns the right paddle top-left corner.
func RightPaddleStart() (x, y float64) {
	return BoardWidth - PaddleOffsetX, BoardHeight/2 - PaddleHeight/2
}
