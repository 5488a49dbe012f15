package parameter

import "time"

// Gravity and Body
const (
	// DefaultGravity is vertical acceleration in cells/sec^2, y grows downward
	DefaultGravity = 120.0

	// DefaultBallRadius in cells
	DefaultBallRadius = 2.0
)

// Spawn Point
const (
	DefaultSpawnX = 20.0
	DefaultSpawnY = 3.0
)

// Ramp Placement
// The default ramp slopes down to the right so the ball is shed toward
// the right edge of the canvas.
const (
	DefaultRampStartX = 10.0
	DefaultRampStartY = 14.0
	DefaultRampEndX   = 34.0
	DefaultRampEndY   = 20.0
)

// Respawn
const (
	// RespawnMargin is how far past the right edge the ball must travel
	// before it is considered gone
	RespawnMargin = 5.0

	// RespawnDelay is the pause before the ball is placed back at the
	// spawn point
	RespawnDelay = 2 * time.Second
)
