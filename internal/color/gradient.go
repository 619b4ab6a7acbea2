package color

import (
	"sort"

	"github.com/cmounce/plasma/internal/fastmath"
)

// ControlPoint anchors a gradient: a color at a circular offset in [0, 1).
type ControlPoint struct {
	Color    LinearColor
	Position float32
}

// NewControlPoint builds a control point from a gamma-encoded color.
// Position wraps into [0, 1).
func NewControlPoint(r, g, b uint8, position float32) ControlPoint {
	return ControlPoint{
		Color:    NewColor(r, g, b).ToLinear(),
		Position: fastmath.Wrap(position),
	}
}

// lerp interpolates from p toward other at the given absolute gradient
// position, moving in the increasing-position direction (wrapping at 1).
func (p ControlPoint) lerp(other ControlPoint, position float32) LinearColor {
	distance := fastmath.Wrap(other.Position - p.Position)
	if distance <= 0 {
		panic("color: degenerate control point span")
	}
	adjPosition := fastmath.Wrap(position-p.Position) / distance
	return p.Color.Lerp(other.Color, adjPosition)
}

// subGradient is one circular interval between two adjacent control points.
type subGradient struct {
	point1, point2 ControlPoint
}

// contains reports whether position falls inside the interval, inclusive
// on both ends.  When point1 is past point2, the interval crosses 0.
func (s subGradient) contains(position float32) bool {
	adj := fastmath.Wrap(position)
	if s.point1.Position <= s.point2.Position {
		return s.point1.Position <= adj && adj <= s.point2.Position
	}
	return adj <= s.point2.Position || s.point1.Position <= adj
}

func (s subGradient) getColor(position float32) LinearColor {
	if !s.contains(position) {
		panic("color: position outside sub-gradient")
	}
	return s.point1.lerp(s.point2, position)
}

// Gradient is an ordered, circular sequence of control points.  The last
// point pairs with the first to close the loop, so a color is defined at
// every position in [0, 1).
type Gradient struct {
	points []ControlPoint
}

// NewGradient builds a gradient from arbitrary control points.  Points are
// sorted by position; duplicate positions keep the first point seen.  An
// empty input synthesizes a neutral gray point, and a single point gets a
// duplicate half a turn away, so every adjacent pair spans a positive
// interval.
func NewGradient(controlPoints []ControlPoint) Gradient {
	points := make([]ControlPoint, len(controlPoints))
	copy(points, controlPoints)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Position < points[j].Position
	})

	deduped := points[:0]
	for _, p := range points {
		if len(deduped) > 0 && deduped[len(deduped)-1].Position == p.Position {
			continue
		}
		deduped = append(deduped, p)
	}
	points = deduped

	if len(points) == 0 {
		points = append(points, NewControlPoint(128, 128, 128, 0))
	}
	if len(points) == 1 {
		cp := points[0]
		cp.Position = fastmath.Wrap(cp.Position + 0.5)
		points = append(points, cp)
	}
	return Gradient{points: points}
}

// GetColor returns the gradient's color at any position; the position
// wraps into [0, 1).
func (g Gradient) GetColor(position float32) LinearColor {
	pos := fastmath.Wrap(position)
	n := len(g.points)
	for i := 0; i < n; i++ {
		// Pair i-1 with i, starting from the wraparound pair (last, first).
		s := subGradient{
			point1: g.points[(i+n-1)%n],
			point2: g.points[i],
		}
		if s.contains(pos) {
			return s.getColor(pos)
		}
	}
	panic("color: no sub-gradient contains position")
}
