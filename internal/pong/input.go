// internal/pong/input.go
package pong

// Key is a logical paddle control key.
type Key uint8

const (
	KeyW Key = iota
	KeyS
	KeyArrowUp
	KeyArrowDown
)

// Input is the per-frame snapshot of held keys supplied by the host.
type Input interface {
	KeyDown(k Key) bool
}

// KeySet is an Input backed by a plain set of held keys.
type KeySet map[Key]bool

func (s KeySet) KeyDown(k Key) bool {
	return s[k]
}

// NoInput reports every key as released.
var NoInput Input = KeySet(nil)
