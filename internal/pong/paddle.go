// internal/pong/paddle.go
package pong

import (
	"fmt"

	"go-arcade/internal/config"
	"go-arcade/internal/utils"

	"github.com/gogpu/gg"
)

// Side selects which paddle and which key pair controls it.
type Side int

const (
	Left  Side = 1
	Right Side = 2
)

type binding struct {
	up, down Key
}

var bindings = map[Side]binding{
	Left:  {up: KeyW, down: KeyS},
	Right: {up: KeyArrowUp, down: KeyArrowDown},
}

// Paddle is a player paddle; position is its top-left corner.
type Paddle struct {
	position gg.Vec2
	side     Side
}

// NewPaddle creates the paddle for side. Any side other than Left or Right
// is a programming error and panics.
func NewPaddle(side Side) *Paddle {
	var x, y float64
	switch side {
	case Left:
		x, y = config.LeftPaddleStart()
	case Right:
		x, y = config.RightPaddleStart()
	default:
		panic(fmt.Sprintf("invalid paddle side: %d", side))
	}
	return &Paddle{
		position: gg.V2(x, y),
		side:     side,
	}
}

// Update reads the paddle's key pair from in and moves one step per held key.
func (p *Paddle) Update(in Input) {
	keys := bindings[p.side]
	if in.KeyDown(keys.up) {
		p.move(-config.PaddleSpeed)
	}
	if in.KeyDown(keys.down) {
		p.move(config.PaddleSpeed)
	}
}

func (p *Paddle) move(deltaY float64) {
	p.position.Y = utils.Clamp(p.position.Y+deltaY, 0, config.BoardHeight-config.PaddleHeight)
}

func (p *Paddle) Position() gg.Vec2 {
	return p.position
}

func (p *Paddle) Side() Side {
	return p.side
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() Rect {
	return Rect{
		Min: p.position,
		Max: p.position.Add(gg.V2(config.PaddleWidth, config.PaddleHeight)),
	}
}
