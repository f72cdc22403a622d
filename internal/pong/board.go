// internal/pong/board.go
package pong

import (
	"go-arcade/internal/config"

	"github.com/gogpu/gg"
)

// Board is the decorative centre divider. It has no update behaviour.
type Board struct {
	divider Rect
}

func NewBoard() Board {
	return Board{
		divider: Rect{
			Min: gg.V2(config.BoardWidth/2-config.DividerHalfWidth, 0),
			Max: gg.V2(config.BoardWidth/2+config.DividerHalfWidth, config.BoardHeight),
		},
	}
}

func (b Board) Divider() Rect {
	return b.divider
}
