// internal/pong/entity.go
package pong

import "github.com/gogpu/gg"

// Kind tags the variant stored in an Entity.
type Kind uint8

const (
	KindBoard Kind = iota
	KindPaddle
	KindBall
)

func (k Kind) String() string {
	switch k {
	case KindBoard:
		return "board"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle, Min is the top-left corner.
type Rect struct {
	Min, Max gg.Vec2
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

type Circle struct {
	Center gg.Vec2
	Radius float64
}

// Entity is one drawable item of the playfield. Board and paddles use Rect,
// the ball uses Circle.
type Entity struct {
	Kind   Kind
	Rect   Rect
	Circle Circle
}
