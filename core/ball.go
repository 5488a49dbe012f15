package core

import "github.com/lixenwraith/bounce/vmath"

// Ball is the moving body of the simulation. Position and velocity are in
// grid cells and cells per second, with y growing downward.
type Ball struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
}

// Bottom returns the y coordinate of the ball's lowest point.
func (b *Ball) Bottom() float64 {
	return b.Pos.Y + b.Radius
}

// Shape returns the ball's current outline for rasterization.
func (b *Ball) Shape() Circle {
	return Circle{Center: b.Pos, Radius: b.Radius}
}
