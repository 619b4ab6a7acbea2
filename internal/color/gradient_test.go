package color

import "testing"

func TestNewControlPointWraps(t *testing.T) {
	a := NewControlPoint(1, 2, 3, 0.25)
	b := NewControlPoint(1, 2, 3, 1.25)
	c := NewControlPoint(1, 2, 3, -0.75)
	if a.Position != b.Position || b.Position != c.Position {
		t.Errorf("positions differ: %v %v %v", a.Position, b.Position, c.Position)
	}
}

func TestControlPointLerp(t *testing.T) {
	/*
	 * a    b        c    (a)
	 * +----+--------+-----+
	 * 0   0.2      0.7    1
	 */
	colorA := NewLinearColor(60, 0, 0)
	colorB := NewLinearColor(0, 60, 0)
	colorC := NewLinearColor(0, 0, 60)
	a := ControlPoint{Color: colorA, Position: 0}
	b := ControlPoint{Color: colorB, Position: 0.2}
	c := ControlPoint{Color: colorC, Position: 0.7}

	cases := []struct {
		name     string
		p1, p2   ControlPoint
		position float32
		want     LinearColor
	}{
		// Interval starting at 0.0/1.0.
		{"a-b start", a, b, 0, colorA},
		{"a-b mid", a, b, 0.1, colorA.Lerp(colorB, 0.5)},
		{"a-b end", a, b, 0.2, colorB},

		// Middle interval.
		{"b-c start", b, c, 0.2, colorB},
		{"b-c mid", b, c, 0.3, colorB.Lerp(colorC, 0.2)},
		{"b-c end", b, c, 0.7, colorC},

		// Interval ending at 0.0/1.0.
		{"c-a start", c, a, 0.7, colorC},
		{"c-a mid", c, a, 0.8, colorC.Lerp(colorA, 1.0/3.0)},
		{"c-a end", c, a, 1, colorA},

		// Interval crossing 0.0/1.0.
		{"c-b start", c, b, 0.7, colorC},
		{"c-b 0.8", c, b, 0.8, colorC.Lerp(colorB, 0.2)},
		{"c-b 0.0", c, b, 0, colorC.Lerp(colorB, 0.6)},
		{"c-b 0.1", c, b, 0.1, colorC.Lerp(colorB, 0.8)},
		{"c-b end", c, b, 0.2, colorB},
	}
	for _, tc := range cases {
		if got := tc.p1.lerp(tc.p2, tc.position); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSubGradientContains(t *testing.T) {
	s := subGradient{
		point1: NewControlPoint(0, 0, 0, 0.25),
		point2: NewControlPoint(0, 0, 0, 0.75),
	}
	cases := []struct {
		position float32
		want     bool
	}{
		{0.24, false}, {0.25, true}, {0.5, true}, {0.75, true}, {0.76, false},
	}
	for _, tc := range cases {
		if got := s.contains(tc.position); got != tc.want {
			t.Errorf("contains(%v) = %v, want %v", tc.position, got, tc.want)
		}
	}
}

func TestSubGradientContainsWraparound(t *testing.T) {
	s := subGradient{
		point1: NewControlPoint(0, 0, 0, 0.75),
		point2: NewControlPoint(0, 0, 0, 0.25),
	}
	cases := []struct {
		position float32
		want     bool
	}{
		{0.74, false}, {0.75, true}, {1, true}, {1.25, true}, {1.26, false},
	}
	for _, tc := range cases {
		if got := s.contains(tc.position); got != tc.want {
			t.Errorf("contains(%v) = %v, want %v", tc.position, got, tc.want)
		}
	}
}

func TestSubGradientGetColor(t *testing.T) {
	c1 := NewLinearColor(60, 0, 0)
	c2 := NewLinearColor(0, 60, 0)
	s := subGradient{
		point1: ControlPoint{Color: c1, Position: 0.8},
		point2: ControlPoint{Color: c2, Position: 0.3},
	}
	want := c1.Lerp(c2, 3.0/5.0)
	if got := s.getColor(0.1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGradientSynthesizesPoints(t *testing.T) {
	// Empty gradient: one gray point, duplicated half a turn away.
	g := NewGradient(nil)
	gray := NewColor(128, 128, 128).ToLinear()
	for _, pos := range []float32{0, 0.3, 0.9} {
		if got := g.GetColor(pos); got != gray {
			t.Errorf("empty gradient at %v: got %v, want %v", pos, got, gray)
		}
	}

	// Single point: same color everywhere.
	red := NewLinearColor(60, 0, 0)
	g = NewGradient([]ControlPoint{{Color: red, Position: 0.4}})
	for _, pos := range []float32{0, 0.4, 0.65, 0.9} {
		if got := g.GetColor(pos); got != red {
			t.Errorf("single-point gradient at %v: got %v, want %v", pos, got, red)
		}
	}
}

func TestGradientDropsDuplicatePositions(t *testing.T) {
	red := NewLinearColor(60, 0, 0)
	green := NewLinearColor(0, 60, 0)
	blue := NewLinearColor(0, 0, 60)
	g := NewGradient([]ControlPoint{
		{Color: red, Position: 0.25},
		{Color: green, Position: 0.25}, // dropped: same position, later in input
		{Color: blue, Position: 0.75},
	})
	if got := g.GetColor(0.25); got != red {
		t.Errorf("at duplicate position: got %v, want first point %v", got, red)
	}
	if got := g.GetColor(0.5); got != red.Lerp(blue, 0.5) {
		t.Errorf("midway: got %v, want %v", got, red.Lerp(blue, 0.5))
	}
}

func TestGradientGetColorAtControlPoint(t *testing.T) {
	c1 := NewLinearColor(60, 0, 0)
	c2 := NewLinearColor(0, 60, 0)
	g := NewGradient([]ControlPoint{
		{Color: c1, Position: 0.25},
		{Color: c2, Position: 0.75},
	})
	if got := g.GetColor(0.25); got != c1 {
		t.Errorf("at point 1: got %v, want %v", got, c1)
	}
	if got := g.GetColor(0.75); got != c2 {
		t.Errorf("at point 2: got %v, want %v", got, c2)
	}
	// Both halves meet the endpoints exactly, wrapping included.
	if got := g.GetColor(0.5); got != c1.Lerp(c2, 0.5) {
		t.Errorf("midway: got %v", got)
	}
	if got := g.GetColor(0); got != c2.Lerp(c1, 0.5) {
		t.Errorf("wrapped midway: got %v", got)
	}
}
