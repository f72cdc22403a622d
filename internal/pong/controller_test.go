package pong

import (
	"testing"

	"github.com/gogpu/gg"
)

func newTestController(pos, vel gg.Vec2) *Controller {
	c := NewController()
	c.ball = &Ball{position: pos, velocity: vel, radius: 10}
	return c
}

func TestLeftPaddleBounce(t *testing.T) {
	tests := []struct {
		name string
		vel  gg.Vec2
	}{
		{"approaching", gg.V2(-3, 0)},
		{"already leaving", gg.V2(3, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// после шага левый край мяча совпадает с правым краем ракетки (x=30)
			c := newTestController(gg.V2(40-tt.vel.X, 300), tt.vel)
			c.Update(NoInput)
			if vx := c.Ball().Velocity().X; vx != 3 {
				t.Errorf("expected vx=3 after contact, got %v", vx)
			}
		})
	}
}

func TestRightPaddleBounce(t *testing.T) {
	c := newTestController(gg.V2(567, 300), gg.V2(3, 0))
	c.Update(NoInput)
	if vx := c.Ball().Velocity().X; vx != -3 {
		t.Errorf("expected vx=-3 after contact, got %v", vx)
	}
}

func TestEdgeOnlyOverlapDoesNotBounce(t *testing.T) {
	// центр мяча на 5px выше ракетки, край перекрывает её
	c := newTestController(gg.V2(43, 245), gg.V2(-3, 0))
	c.Update(NoInput)
	if vx := c.Ball().Velocity().X; vx != -3 {
		t.Errorf("expected no bounce, got vx=%v", vx)
	}
}

func TestPaddlesMoveBeforeCollision(t *testing.T) {
	// W сдвигает ракетку до y=245 в этом же тике, и центр мяча попадает в неё
	c := newTestController(gg.V2(43, 245), gg.V2(-3, 0))
	c.Update(KeySet{KeyW: true})
	if c.LeftPaddle().Position().Y != 245 {
		t.Fatalf("expected paddle at 245, got %v", c.LeftPaddle().Position().Y)
	}
	if vx := c.Ball().Velocity().X; vx != 3 {
		t.Errorf("expected bounce with moved paddle, got vx=%v", vx)
	}
}

func TestOutOfBoundsReset(t *testing.T) {
	tests := []struct {
		name string
		pos  gg.Vec2
		vel  gg.Vec2
	}{
		{"past right edge", gg.V2(605, 100), gg.V2(3, 3)},
		{"past right edge inside paddle band", gg.V2(605, 300), gg.V2(3, 3)},
		{"past left edge", gg.V2(-2, 100), gg.V2(-3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(tt.pos, tt.vel)
			c.Update(NoInput)
			want := NewBall()
			got := c.Ball()
			if got.Position() != want.Position() || got.Velocity() != want.Velocity() || got.Radius() != want.Radius() {
				t.Errorf("expected canonical ball %+v, got %+v", *want, *got)
			}
		})
	}
}

func TestBallInsideFieldIsNotReset(t *testing.T) {
	c := newTestController(gg.V2(100, 100), gg.V2(3, 3))
	ball := c.Ball()
	c.Update(NoInput)
	if c.Ball() != ball {
		t.Error("ball was replaced while inside the field")
	}
	if c.Ball().Position() != gg.V2(103, 103) {
		t.Errorf("expected (103, 103), got %v", c.Ball().Position())
	}
}

func TestLongRunInvariants(t *testing.T) {
	c := NewController()
	inputs := []KeySet{
		{KeyW: true, KeyArrowDown: true},
		{KeyS: true},
		{KeyArrowUp: true},
		{},
	}
	for i := 0; i < 5000; i++ {
		c.Update(inputs[(i/37)%len(inputs)])
		for _, p := range []*Paddle{c.LeftPaddle(), c.RightPaddle()} {
			if y := p.Position().Y; y < 0 || y > 500 {
				t.Fatalf("tick %d: paddle %d at y=%v", i, p.Side(), y)
			}
		}
		if v := c.Ball().Velocity(); (v.X != 3 && v.X != -3) || (v.Y != 3 && v.Y != -3) {
			t.Fatalf("tick %d: unexpected velocity %v", i, v)
		}
	}
	if c.Ticks() != 5000 {
		t.Errorf("expected 5000 ticks, got %d", c.Ticks())
	}
}

func TestEntities(t *testing.T) {
	c := NewController()
	ents := c.Entities()
	wantKinds := []Kind{KindBoard, KindPaddle, KindPaddle, KindBall}
	if len(ents) != len(wantKinds) {
		t.Fatalf("expected %d entities, got %d", len(wantKinds), len(ents))
	}
	for i, k := range wantKinds {
		if ents[i].Kind != k {
			t.Errorf("entity %d: expected %s, got %s", i, k, ents[i].Kind)
		}
	}

	if d := ents[0].Rect; d.Min != gg.V2(295, 0) || d.Max != gg.V2(305, 600) {
		t.Errorf("unexpected divider %+v", d)
	}
	if ents[1].Rect != c.LeftPaddle().Bounds() || ents[2].Rect != c.RightPaddle().Bounds() {
		t.Error("paddle entities do not match paddle bounds")
	}
	if ball := ents[3].Circle; ball.Center != gg.V2(295, 295) || ball.Radius != 10 {
		t.Errorf("unexpected ball circle %+v", ball)
	}
}
