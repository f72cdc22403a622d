package pong

import (
	"math"
	"testing"

	"go-arcade/internal/config"

	"github.com/gogpu/gg"
)

func TestNewBallCanonicalState(t *testing.T) {
	b := NewBall()
	if got, want := b.Position(), gg.V2(295, 295); got != want {
		t.Errorf("expected start position %v, got %v", want, got)
	}
	if got, want := b.Velocity(), gg.V2(3, 3); got != want {
		t.Errorf("expected start velocity %v, got %v", want, got)
	}
	if b.Radius() != 10 {
		t.Errorf("expected radius 10, got %v", b.Radius())
	}
}

func TestBallBouncesOffBottom(t *testing.T) {
	b := NewBall()

	ticks := 0
	for b.Velocity().Y > 0 {
		b.Update()
		ticks++
		if ticks > 1000 {
			t.Fatal("ball never reflected off the bottom edge")
		}
	}

	// 295 + 3*99 = 592, first position with y+r >= 600
	if ticks != 99 {
		t.Errorf("expected reflection on tick 99, got %d", ticks)
	}
	if b.Position().Y+b.Radius() < config.BoardHeight {
		t.Errorf("reflected before touching the edge: y=%v", b.Position().Y)
	}
	if b.Velocity().Y != -3 {
		t.Errorf("expected vy=-3 after reflection, got %v", b.Velocity().Y)
	}

	prev := b.Position().Y
	for i := 0; i < 5; i++ {
		b.Update()
		if b.Position().Y >= prev {
			t.Fatalf("tick %d: y did not decrease (%v -> %v)", i, prev, b.Position().Y)
		}
		prev = b.Position().Y
	}
}

func TestBallReflectionKeepsSpeed(t *testing.T) {
	tests := []struct {
		name   string
		pos    gg.Vec2
		vel    gg.Vec2
		wantVY float64
	}{
		{"top edge", gg.V2(300, 12), gg.V2(2, -4), 4},
		{"bottom edge", gg.V2(300, 588), gg.V2(-2, 4), -4},
		{"open field", gg.V2(300, 300), gg.V2(2, 4), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Ball{position: tt.pos, velocity: tt.vel, radius: config.BallRadius}
			before := b.Velocity().Length()
			b.Update()
			if b.Velocity().Y != tt.wantVY {
				t.Errorf("expected vy=%v, got %v", tt.wantVY, b.Velocity().Y)
			}
			if b.Velocity().X != tt.vel.X {
				t.Errorf("vx changed: %v -> %v", tt.vel.X, b.Velocity().X)
			}
			if after := b.Velocity().Length(); math.Abs(after-before) > 1e-12 {
				t.Errorf("speed changed: %v -> %v", before, after)
			}
		})
	}
}

func TestBallDoesNotClampPosition(t *testing.T) {
	b := &Ball{position: gg.V2(300, 595), velocity: gg.V2(0, 3), radius: 10}
	b.Update()
	if b.Position().Y != 598 {
		t.Errorf("expected y=598 (no clamping), got %v", b.Position().Y)
	}
}

func TestSetVelocityX(t *testing.T) {
	b := NewBall()
	b.SetVelocityX(-7)
	if got := b.Velocity(); got != gg.V2(-7, 3) {
		t.Errorf("expected (-7, 3), got %v", got)
	}
}
