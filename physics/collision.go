package physics

import "github.com/lixenwraith/bounce/core"

// Damping factors applied on impact. Restitution scales the reflected
// normal velocity, friction bleeds speed along the surface.
const (
	FloorRestitution = 0.8
	FloorFriction    = 0.98
	RampRestitution  = 0.8
	RampFriction     = 0.99
)

// CollideFloor resolves contact with the horizontal floor at floorY.
// The ball is clamped to rest on the surface and its vertical velocity is
// reflected. Returns the impact speed for sound playback and whether
// contact occurred.
func CollideFloor(b *core.Ball, floorY float64) (float64, bool) {
	if b.Bottom() < floorY {
		return 0, false
	}
	speed := b.Vel.Length()
	b.Pos.Y = floorY - b.Radius
	b.Vel.Y *= -FloorRestitution
	b.Vel.X *= FloorFriction
	return speed, true
}

// CollideRamp resolves contact with the ramp surface. The test evaluates
// the ramp's line function at the ball's x, so contact only applies within
// the segment's horizontal span. Velocity is rotated into the ramp frame,
// reflected off the surface normal, and rotated back. Returns the impact
// speed for sound playback and whether contact occurred.
func CollideRamp(b *core.Ball, ramp core.Segment) (float64, bool) {
	if !ramp.SpansX(b.Pos.X) {
		return 0, false
	}
	surface := ramp.HeightAt(b.Pos.X)
	if b.Bottom() < surface {
		return 0, false
	}
	speed := b.Vel.Length()

	// In the rotated frame the ramp is horizontal: x is tangent, y is normal.
	rot := b.Vel.Rotate(-ramp.Angle)
	rot.Y *= -RampRestitution
	b.Vel = rot.Rotate(ramp.Angle)
	b.Vel.X *= RampFriction
	b.Pos.Y = surface - b.Radius
	return speed, true
}
