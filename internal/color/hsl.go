package color

import (
	"github.com/chewxy/math32"

	"github.com/cmounce/plasma/internal/fastmath"
)

// FromHSL builds a LinearColor from cylindrical HSL coordinates.
// Hue wraps; saturation and lightness clamp to [0, 1].
func FromHSL(hue, saturation, lightness float32) LinearColor {
	h := fastmath.Wrap(hue)
	s := fastmath.Clamp(saturation, 0, 1)
	l := fastmath.Clamp(lightness, 0, 1)

	// Upper and lower bounds on the color components at lightness = 50%.
	upperL50 := 0.5 + s/2
	lowerL50 := 0.5 - s/2

	// Pull the bounds toward black or white as lightness leaves 50%.
	blackWhite := math32.Round(l)
	position := math32.Abs(l-0.5) * 2
	upper := fastmath.Lerp(upperL50, blackWhite, position)
	lower := fastmath.Lerp(lowerL50, blackWhite, position)

	sector := int(h*6) % 6
	offset := h*6 - math32.Floor(h*6)
	var r, g, b float32
	switch sector {
	case 0:
		r, g, b = upper, fastmath.Lerp(lower, upper, offset), lower
	case 1:
		r, g, b = fastmath.Lerp(upper, lower, offset), upper, lower
	case 2:
		r, g, b = lower, upper, fastmath.Lerp(lower, upper, offset)
	case 3:
		r, g, b = lower, fastmath.Lerp(upper, lower, offset), upper
	case 4:
		r, g, b = fastmath.Lerp(lower, upper, offset), lower, upper
	case 5:
		r, g, b = upper, lower, fastmath.Lerp(upper, lower, offset)
	}
	return NewLinearColorF32(r, g, b)
}

/*
FromSquareHSL is a transformed HSL whose coordinates are Cartesian rather
than cylindrical.

  - colorX and colorY are Cartesian coordinates on a square color wheel:
    (0.0, 1.0) is the upper-left corner of the square (H = 0.0, S = 1.0);
    (1.0, 0.7) is 1/4 + 3/40 clockwise around the perimeter
    (H = 0.325, S = 1.0); (0.5, 0.5) is the center (S = 0.0).
  - lightness goes from 0.0 to 1.0 and works the same as in regular HSL.

Cartesian coordinates mutate well: a small change to a gene byte is always
a small change to the color, with no discontinuity at the hue seam.
*/
func FromSquareHSL(colorX, colorY, lightness float32) LinearColor {
	x := fastmath.Lerp(-1, 1, fastmath.Clamp(colorX, 0, 1))
	y := fastmath.Lerp(-1, 1, fastmath.Clamp(colorY, 0, 1))
	saturation := math32.Max(math32.Abs(x), math32.Abs(y))
	if saturation == 0 {
		return FromHSL(0, saturation, lightness)
	}

	// Project (x, y) onto the perimeter of the square it sits on, then
	// unroll that perimeter into a hue.
	sideLength := saturation * 2
	perimeter := sideLength * 4
	adjX := (x + saturation) / perimeter
	adjY := (y + saturation) / perimeter
	var hue float32
	switch {
	case y > x && y > -x:
		hue = adjX
	case y <= x && y > -x:
		hue = 0.25 + (0.25 - adjY)
	case y <= x && y <= -x:
		hue = 0.5 + (0.25 - adjX)
	default:
		hue = 0.75 + adjY
	}
	return FromHSL(hue, saturation, lightness)
}
