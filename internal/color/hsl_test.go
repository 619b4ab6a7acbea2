package color

import (
	"testing"

	"github.com/chewxy/math32"
)

// newGamma builds a LinearColor from gamma-encoded u8 values.
func newGamma(r, g, b uint8) LinearColor {
	return NewColor(r, g, b).ToLinear()
}

// close enough in [0,1]-scaled linear space
func assertClose(t *testing.T, got, want LinearColor) {
	t.Helper()
	g, w := got.vec3(), want.vec3()
	d := g.sub(w)
	if math32.Sqrt(d.magnitudeSq()) >= 0.01 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromHSL(t *testing.T) {
	/*
	 * H: red -> green -> blue
	 * S: gray -> color
	 * L: black -> color -> white
	 */

	// Saturated primaries and secondaries.
	cases := []struct {
		hue  float32
		want LinearColor
	}{
		{0, newGamma(255, 0, 0)},
		{1.0 / 6.0, newGamma(255, 255, 0)},
		{2.0 / 6.0, newGamma(0, 255, 0)},
		{3.0 / 6.0, newGamma(0, 255, 255)},
		{4.0 / 6.0, newGamma(0, 0, 255)},
		{5.0 / 6.0, newGamma(255, 0, 255)},
		{1, newGamma(255, 0, 0)},
	}
	for _, tc := range cases {
		if got := FromHSL(tc.hue, 1, 0.5); got != tc.want {
			t.Errorf("FromHSL(%v, 1, 0.5) = %v, want %v", tc.hue, got, tc.want)
		}
	}

	// In-between hues interpolate between the bracketing primaries.
	const numIter = 3 * 6
	for i := 0; i < numIter; i++ {
		hue := float32(i) / numIter
		sector := math32.Floor(6 * hue)
		offset := 6*hue - sector
		previous := FromHSL(sector/6, 1, 0.5)
		next := FromHSL((sector+1)/6, 1, 0.5)
		assertClose(t, FromHSL(hue, 1, 0.5), previous.Lerp(next, offset))
	}

	// Black, gamma-correct gray, white.
	bk := newGamma(0, 0, 0)
	wt := newGamma(255, 255, 255)
	gray := bk.Lerp(wt, 0.5)
	if got := FromHSL(0, 0, 0); got != bk {
		t.Errorf("black: got %v", got)
	}
	if got := FromHSL(0, 1, 0); got != bk {
		t.Errorf("saturated black: got %v", got)
	}
	if got := FromHSL(0, 0, 0.5); got != gray {
		t.Errorf("gray: got %v, want %v", got, gray)
	}
	if got := FromHSL(0, 0, 1); got != wt {
		t.Errorf("white: got %v", got)
	}
	if got := FromHSL(0, 1, 1); got != wt {
		t.Errorf("saturated white: got %v", got)
	}

	// Saturation fades gray to the pure hue.
	red := newGamma(255, 0, 0)
	assertClose(t, FromHSL(0, 0.25, 0.5), gray.Lerp(red, 0.25))
	assertClose(t, FromHSL(0, 0.5, 0.5), gray.Lerp(red, 0.5))
	assertClose(t, FromHSL(0, 0.75, 0.5), gray.Lerp(red, 0.75))
}

func TestFromSquareHSL(t *testing.T) {
	// Going around the edge of the color square cycles through the hues.
	perimeter := []struct {
		x, y, hue float32
	}{
		{0, 1, 0.0 / 8.0},
		{0.5, 1, 1.0 / 8.0},
		{1, 1, 2.0 / 8.0},
		{1, 0.5, 3.0 / 8.0},
		{1, 0, 4.0 / 8.0},
		{0.5, 0, 5.0 / 8.0},
		{0, 0, 6.0 / 8.0},
		{0, 0.5, 7.0 / 8.0},
	}
	for _, tc := range perimeter {
		got := FromSquareHSL(tc.x, tc.y, 0.5)
		want := FromHSL(tc.hue, 1, 0.5)
		if got != want {
			t.Errorf("FromSquareHSL(%v, %v, 0.5) = %v, want hue %v = %v",
				tc.x, tc.y, got, tc.hue, want)
		}
	}

	// Moving toward the center reduces saturation.
	saturation := []struct {
		x, y, hue, s float32
	}{
		{0.5, 6.0 / 8.0, 1.0 / 8.0, 0.5},
		{0.5, 5.0 / 8.0, 1.0 / 8.0, 0.25},
		{0.5, 4.0 / 8.0, 1.0 / 8.0, 0},
		{0.5, 3.0 / 8.0, 5.0 / 8.0, 0.25},
		{0.5, 2.0 / 8.0, 5.0 / 8.0, 0.5},
	}
	for _, tc := range saturation {
		got := FromSquareHSL(tc.x, tc.y, 0.5)
		want := FromHSL(tc.hue, tc.s, 0.5)
		if got != want {
			t.Errorf("FromSquareHSL(%v, %v, 0.5) = %v, want %v", tc.x, tc.y, got, want)
		}
	}

	// Lightness passes straight through.
	for _, l := range []float32{0, 0.25, 0.75, 1} {
		got := FromSquareHSL(0, 1, l)
		want := FromHSL(0, 1, l)
		if got != want {
			t.Errorf("lightness %v: got %v, want %v", l, got, want)
		}
	}
}
