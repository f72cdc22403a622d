// internal/pong/controller.go
package pong

import (
	"math"

	"go-arcade/internal/config"
)

// Controller owns the ball and both paddles for a game session and runs one
// simulation step per Update call.
type Controller struct {
	ball  *Ball
	left  *Paddle
	right *Paddle
	board Board
	ticks uint64
}

func NewController() *Controller {
	return &Controller{
		ball:  NewBall(),
		left:  NewPaddle(Left),
		right: NewPaddle(Right),
		board: NewBoard(),
	}
}

// Update runs one tick: paddles, ball, left collision, right collision,
// then the out-of-bounds reset.
func (c *Controller) Update(in Input) {
	c.left.Update(in)
	c.right.Update(in)
	c.ball.Update()

	pos := c.ball.Position()
	r := c.ball.Radius()

	// Проверяется только центр мяча по Y, касание краем не считается
	lp := c.left.Position()
	if pos.X-r <= lp.X+config.PaddleWidth && pos.Y >= lp.Y && pos.Y <= lp.Y+config.PaddleHeight {
		c.ball.SetVelocityX(math.Abs(c.ball.Velocity().X))
	}

	rp := c.right.Position()
	if pos.X+r >= rp.X && pos.Y >= rp.Y && pos.Y <= rp.Y+config.PaddleHeight {
		c.ball.SetVelocityX(-math.Abs(c.ball.Velocity().X))
	}

	if pos.X < 0 || pos.X > config.BoardWidth {
		c.ball = NewBall()
	}
	c.ticks++
}

func (c *Controller) Ball() *Ball {
	return c.ball
}

func (c *Controller) LeftPaddle() *Paddle {
	return c.left
}

func (c *Controller) RightPaddle() *Paddle {
	return c.right
}

func (c *Controller) Board() Board {
	return c.board
}

// Ticks returns how many times Update has run.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Entities returns the draw list in back-to-front order.
func (c *Controller) Entities() []Entity {
	return []Entity{
		{Kind: KindBoard, Rect: c.board.Divider()},
		{Kind: KindPaddle, Rect: c.left.Bounds()},
		{Kind: KindPaddle, Rect: c.right.Bounds()},
		{Kind: KindBall, Circle: Circle{Center: c.ball.Position(), Radius: c.ball.Radius()}},
	}
}
