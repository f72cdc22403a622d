// internal/utils/math.go
package utils

import "cmp"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// InvLerp is the inverse of Lerp: where v sits between from and to.
// A zero-width range maps to 0.
func InvLerp(from, to, v float64) float64 {
	if from == to {
		return 0
	}
	return (v - from) / (to - from)
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
