package parameter

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/bounce/vmath"
)

// Params collects every runtime tunable of the demo. Build one with
// Default and adjust from flags or the environment; the zero value is
// not usable.
type Params struct {
	// Canvas
	Width  int
	Height int
	FPS    int

	// Physics
	Gravity    float64
	BallRadius float64
	Spawn      vmath.Vec2
	RampStart  vmath.Vec2
	RampEnd    vmath.Vec2

	// Respawn
	RespawnMargin float64
	RespawnDelay  time.Duration

	// Toggles
	Sound bool
	Debug bool
}

// Default returns the stock demo configuration.
func Default() Params {
	return Params{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		FPS:           DefaultFPS,
		Gravity:       DefaultGravity,
		BallRadius:    DefaultBallRadius,
		Spawn:         vmath.Vec2{X: DefaultSpawnX, Y: DefaultSpawnY},
		RampStart:     vmath.Vec2{X: DefaultRampStartX, Y: DefaultRampStartY},
		RampEnd:       vmath.Vec2{X: DefaultRampEndX, Y: DefaultRampEndY},
		RespawnMargin: RespawnMargin,
		RespawnDelay:  RespawnDelay,
		Sound:         true,
	}
}

// Load returns the defaults with environment overrides applied. A .env
// file in the working directory is read first if present; unset or
// malformed variables silently keep their defaults.
func Load() Params {
	godotenv.Load()

	p := Default()
	p.Width = getEnvInt("BOUNCE_WIDTH", p.Width)
	p.Height = getEnvInt("BOUNCE_HEIGHT", p.Height)
	p.FPS = getEnvInt("BOUNCE_FPS", p.FPS)
	p.Gravity = getEnvFloat("BOUNCE_GRAVITY", p.Gravity)
	p.BallRadius = getEnvFloat("BOUNCE_RADIUS", p.BallRadius)
	p.Sound = getEnvBool("BOUNCE_SOUND", p.Sound)
	p.Debug = getEnvBool("BOUNCE_DEBUG", p.Debug)
	return p
}

// Validate checks every tunable before the terminal is touched, so a bad
// configuration fails with a readable message instead of a corrupted
// screen.
func (p Params) Validate() error {
	if p.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", p.Width)
	}
	if p.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", p.Height)
	}
	if p.Height%2 != 0 {
		return fmt.Errorf("height must be even for row-pair encoding, got %d", p.Height)
	}
	if p.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", p.FPS)
	}
	if p.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", p.Gravity)
	}
	if p.BallRadius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %v", p.BallRadius)
	}
	if p.RampStart.X == p.RampEnd.X {
		return fmt.Errorf("ramp cannot be vertical, both endpoints at x=%v", p.RampStart.X)
	}
	if p.RespawnMargin < 0 {
		return fmt.Errorf("respawn margin cannot be negative, got %v", p.RespawnMargin)
	}
	if p.RespawnDelay < 0 {
		return fmt.Errorf("respawn delay cannot be negative, got %v", p.RespawnDelay)
	}
	return nil
}

// FrameInterval returns the wall-clock duration of one frame.
func (p Params) FrameInterval() time.Duration {
	return time.Second / time.Duration(p.FPS)
}

// DT returns the integration timestep in seconds.
func (p Params) DT() float64 {
	return 1.0 / float64(p.FPS)
}

// GravityVec returns gravity as an acceleration vector.
func (p Params) GravityVec() vmath.Vec2 {
	return vmath.Vec2{Y: p.Gravity}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
