// Package core holds the geometry shared by the render pipeline and the
// physics step: the ball's circle and the ramp's line segment.
package core

import (
	"fmt"
	"math"

	"github.com/lixenwraith/bounce/vmath"
)

// Circle is the ball's render shape. Center moves every tick; Radius is
// fixed after construction and always positive.
type Circle struct {
	Center vmath.Vec2
	Radius float64
}

// NewCircle validates the radius precondition at construction so the
// rasterizer never sees a degenerate shape.
func NewCircle(center vmath.Vec2, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, fmt.Errorf("circle radius must be positive, got %v", radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Contains reports whether the point lies inside or on the circle, using
// the squared-distance form to avoid the sqrt.
func (c Circle) Contains(p vmath.Vec2) bool {
	return vmath.DistSq(c.Center, p) <= c.Radius*c.Radius
}

// Segment is an immutable non-vertical line segment. Slope, Angle and
// Intercept are derived once at construction; repositioning means
// building a new value.
type Segment struct {
	Start, End vmath.Vec2

	// Derived from Start/End; the underlying line is y = Slope*x + Intercept
	Slope     float64
	Intercept float64
	// Angle is the inclination of the line in radians, atan(Slope);
	// positive slopes descend on screen since y grows downward
	Angle float64
}

// NewSegment derives the line attributes from the endpoints. A vertical
// segment has no slope in this model and is rejected.
func NewSegment(start, end vmath.Vec2) (Segment, error) {
	if start.X == end.X {
		return Segment{}, fmt.Errorf("vertical segment unsupported: start.x == end.x == %v", start.X)
	}
	slope := (end.Y - start.Y) / (end.X - start.X)
	return Segment{
		Start:     start,
		End:       end,
		Slope:     slope,
		Intercept: start.Y - slope*start.X,
		Angle:     math.Atan(slope),
	}, nil
}

// HeightAt evaluates the segment's line function y = Slope*x + Intercept.
// The function belongs to the full infinite line; callers wanting the
// segment proper must check SpansX first.
func (s Segment) HeightAt(x float64) float64 {
	return s.Slope*x + s.Intercept
}

// SpansX reports whether x falls within the segment's horizontal extent.
func (s Segment) SpansX(x float64) bool {
	lo, hi := s.Start.X, s.End.X
	if lo > hi {
		lo, hi = hi, lo
	}
	return x >= lo && x <= hi
}

// MinX returns the left edge of the segment's horizontal extent.
func (s Segment) MinX() float64 {
	return math.Min(s.Start.X, s.End.X)
}

// MaxX returns the right edge of the segment's horizontal extent.
func (s Segment) MaxX() float64 {
	return math.Max(s.Start.X, s.End.X)
}
