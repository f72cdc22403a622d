package utils

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}

	if got := Clamp(7, 1, 3); got != 3 {
		t.Errorf("Clamp int: expected 3, got %d", got)
	}
}

func TestLerpRoundTrip(t *testing.T) {
	for _, v := range []float64{1, 12.5, 25, 50} {
		tt := InvLerp(1, 50, v)
		if got := Lerp(1, 50, tt); got < v-1e-9 || got > v+1e-9 {
			t.Errorf("Lerp(InvLerp(%v)) = %v", v, got)
		}
	}
	if got := InvLerp(3, 3, 3); got != 0 {
		t.Errorf("expected 0 for empty range, got %v", got)
	}
}
