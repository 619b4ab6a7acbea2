// Package fastmath provides the cyclic float32 primitives the plasma
// formulas and the color engine are built on.  Everything here has period 1
// rather than 2π, and everything is deterministic: the wave approximation is
// part of the output contract, not just an optimization.
package fastmath

import "github.com/chewxy/math32"

// Wave is like sin(), except its period is 1 instead of 2π.
//
// Each half-period is a parabola: the interval (0, 0.5) is covered by
// f(x) = 16x² − 8x, and the abs() flips it upside-down on the negative
// side.  The small error versus a true sine is intentional and must stay:
// rendered patterns depend on this exact shape.
func Wave(x float32) float32 {
	// x2 loops over [-0.5, 0.5), shifted by half a period.
	x2 := x - math32.Floor(x) - 0.5
	return x2 * (math32.Abs(x2)*16 - 8)
}

// Cowave is like cos(), except with a period of 1.
func Cowave(x float32) float32 {
	return Wave(x + 0.25)
}

// Wrap maps any value onto [0, 1).  Wrap(-0.25) is 0.75.
func Wrap(x float32) float32 {
	return x - math32.Floor(x)
}

// Lerp interpolates linearly from a to b.  Position is not clamped, so
// values outside [0, 1] extrapolate.
func Lerp(a, b, position float32) float32 {
	return a*(1-position) + b*position
}

// Clamp restricts x to [lower, upper], inclusive.
func Clamp(x, lower, upper float32) float32 {
	return math32.Max(lower, math32.Min(x, upper))
}
