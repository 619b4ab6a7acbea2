// Package color implements the plasma color engine: gamma/linear color
// representations, circular gradients, k-means palette reduction, and
// ordered dithering.  Everything in this package is deterministic — the
// same inputs always produce bit-identical outputs — because genomes are
// shared as reproducible strings and re-rendering one must give the same
// animation.
//
// The package is named like the stdlib image/color; callers that need both
// alias the import.
package color

import (
	"math"

	"github.com/chewxy/math32"
)

const gamma = 2.2

// Color is traditional 24-bit color, where each channel is gamma encoded.
type Color struct {
	R, G, B uint8
}

// LinearColor stores each channel linearly (no gamma encoding).
//
// A LinearColor is 48 bits wide, but it is meant to cover the same range as
// regular 24-bit color.  In particular, a Color can round-trip through
// LinearColor and back without loss of information.
type LinearColor struct {
	R, G, B uint16
}

// NewColor returns a gamma-encoded color from 8-bit channels.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ToLinear converts c to linear light.
func (c Color) ToLinear() LinearColor {
	return FromGamma(c)
}

// NewLinearColor returns a linear color from 16-bit channels.
func NewLinearColor(r, g, b uint16) LinearColor {
	return LinearColor{R: r, G: g, B: b}
}

// NewLinearColorF32 builds a LinearColor from floats in [0, 1].
func NewLinearColorF32(r, g, b float32) LinearColor {
	return LinearColor{
		R: uint16(math32.Round(r * 65535)),
		G: uint16(math32.Round(g * 65535)),
		B: uint16(math32.Round(b * 65535)),
	}
}

/*
componentToLinear converts one gamma channel to linear light.

Rounding is asymmetric on purpose.  If this rounded to nearest, inputs 0
and 1 would collide:

	65535*(0/255)**2.2 = 0.0      (rounds to 0)
	65535*(1/255)**2.2 = 0.3327   (also rounds to 0)

and the round trip would lose information.  Instead this rounds up, and
componentToGamma rounds down.  With a gamma of 2.2 that nudging is just
barely enough to make every round trip exact, which is why the powf runs in
float64: a float32 pow's ulp error could tip a value over a ceil boundary.
*/
func componentToLinear(c uint8) uint16 {
	gammaFloat := float64(c) / 255
	linearFloat := math.Pow(gammaFloat, gamma)
	return uint16(math.Ceil(linearFloat * 65535))
}

func componentToGamma(c uint16) uint8 {
	linearFloat := float64(c) / 65535
	gammaFloat := math.Pow(linearFloat, 1/gamma)
	return uint8(math.Floor(gammaFloat * 255))
}

// FromGamma converts a gamma-encoded color to linear light.
func FromGamma(c Color) LinearColor {
	return LinearColor{
		R: componentToLinear(c.R),
		G: componentToLinear(c.G),
		B: componentToLinear(c.B),
	}
}

// ToGamma converts back to 24-bit gamma-encoded color.
func (c LinearColor) ToGamma() Color {
	return Color{
		R: componentToGamma(c.R),
		G: componentToGamma(c.G),
		B: componentToGamma(c.B),
	}
}

// Lerp interpolates componentwise between c and other in linear light,
// which is what makes gradient blending perceptually correct.  Position
// must be in [0, 1]; channels round to nearest, half away from zero, so the
// endpoints are exact.
func (c LinearColor) Lerp(other LinearColor, position float32) LinearColor {
	if position < 0 || position > 1 {
		panic("color: lerp position out of range")
	}
	antiPosition := 1 - position
	lerp := func(a, b uint16) uint16 {
		return uint16(math32.Round(float32(a)*antiPosition + float32(b)*position))
	}
	return LinearColor{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
	}
}

// distanceSq is the squared distance between two colors, summed over the
// signed per-channel differences.  This is the one similarity metric used
// everywhere in the engine (k-means assignment, nearest-palette lookup,
// dither search), always over the linear channels.
func (c LinearColor) distanceSq(other LinearColor) uint64 {
	partial := func(x, y uint16) uint64 {
		delta := int64(x) - int64(y)
		return uint64(delta * delta)
	}
	return partial(c.R, other.R) + partial(c.G, other.G) + partial(c.B, other.B)
}

// average returns the per-channel arithmetic mean of colors.
func average(colors []LinearColor) LinearColor {
	var r, g, b float32
	for _, c := range colors {
		r += float32(c.R)
		g += float32(c.G)
		b += float32(c.B)
	}
	n := float32(len(colors))
	return LinearColor{
		R: uint16(math32.Round(r / n)),
		G: uint16(math32.Round(g / n)),
		B: uint16(math32.Round(b / n)),
	}
}

// vec3 is a small float32 vector for the palette's repelling-force math.
// The channels are scaled to [0, 1].
type vec3 struct {
	x, y, z float32
}

func (c LinearColor) vec3() vec3 {
	return vec3{
		x: float32(c.R) / 65535,
		y: float32(c.G) / 65535,
		z: float32(c.B) / 65535,
	}
}

func (v vec3) sub(o vec3) vec3 {
	return vec3{v.x - o.x, v.y - o.y, v.z - o.z}
}

func (v vec3) add(o vec3) vec3 {
	return vec3{v.x + o.x, v.y + o.y, v.z + o.z}
}

func (v vec3) scale(s float32) vec3 {
	return vec3{v.x * s, v.y * s, v.z * s}
}

func (v vec3) dot(o vec3) float32 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

func (v vec3) magnitudeSq() float32 {
	return v.dot(v)
}
