// internal/pong/ball.go
package pong

import (
	"go-arcade/internal/config"

	"github.com/gogpu/gg"
)

// Ball moves a fixed step per tick and reflects off the top and bottom edges.
type Ball struct {
	position gg.Vec2
	velocity gg.Vec2
	radius   float64
}

// NewBall returns a ball in the canonical start state.
func NewBall() *Ball {
	return &Ball{
		position: gg.V2(config.BallStartX, config.BallStartY),
		velocity: gg.V2(config.BallSpeed, config.BallSpeed),
		radius:   config.BallRadius,
	}
}

// Update advances the ball by one tick. Horizontal bounds are the
// controller's job.
func (b *Ball) Update() {
	b.position = b.position.Add(b.velocity)

	if b.position.Y-b.radius <= 0 || b.position.Y+b.radius >= config.BoardHeight {
		b.velocity.Y = -b.velocity.Y
	}
}

func (b *Ball) Position() gg.Vec2 {
	return b.position
}

func (b *Ball) Velocity() gg.Vec2 {
	return b.velocity
}

func (b *Ball) Radius() float64 {
	return b.radius
}

// SetVelocityX заменяет только горизонтальную составляющую скорости
func (b *Ball) SetVelocityX(x float64) {
	b.velocity.X = x
}
