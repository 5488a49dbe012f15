package physics

import (
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/vmath"
)

// Integrate performs explicit Euler integration: v = v + g*dt; p = p + v*dt
func Integrate(b *core.Ball, gravity vmath.Vec2, dt float64) {
	b.Vel = b.Vel.Add(gravity.Scale(dt))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Exited reports whether the ball has left the court past the right edge.
func Exited(b *core.Ball, width, margin float64) bool {
	return b.Pos.X > width+margin
}

// Respawn returns the ball to the spawn point at rest.
func Respawn(b *core.Ball, spawn vmath.Vec2) {
	b.Pos = spawn
	b.Vel = vmath.Vec2{}
}
