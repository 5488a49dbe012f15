package engine

import (
	"fmt"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/vmath"
)

// Sim holds the simulation state: one ball, one ramp, and the pixel grid
// they are painted into. Step is the only per-tick mutator; the sandbox
// controls (Nudge, SetRamp, ScaleGravity) adjust the scene between ticks.
type Sim struct {
	params parameter.Params
	ball   core.Ball
	ramp   core.Segment
	grid   *render.Grid
}

// StepResult reports what one tick did, for sound playback and stats.
type StepResult struct {
	Bounced     bool
	ImpactSpeed float64
	Exited      bool
}

// NewSim validates the configuration and builds the initial scene. The
// first frame is already painted when NewSim returns.
func NewSim(p parameter.Params) (*Sim, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	ramp, err := core.NewSegment(p.RampStart, p.RampEnd)
	if err != nil {
		return nil, fmt.Errorf("build ramp: %w", err)
	}

	s := &Sim{
		params: p,
		ramp:   ramp,
		grid:   render.NewGrid(p.Width, p.Height),
		ball: core.Ball{
			Pos:    p.Spawn,
			Radius: p.BallRadius,
		},
	}
	s.paint()
	return s, nil
}

// Step advances the simulation by dt seconds and repaints the grid.
func (s *Sim) Step(dt float64) StepResult {
	physics.Integrate(&s.ball, s.params.GravityVec(), dt)

	var res StepResult
	if speed, hit := physics.CollideRamp(&s.ball, s.ramp); hit {
		res.Bounced = true
		res.ImpactSpeed = speed
	}
	if speed, hit := physics.CollideFloor(&s.ball, float64(s.params.Height)); hit {
		res.Bounced = true
		if speed > res.ImpactSpeed {
			res.ImpactSpeed = speed
		}
	}
	res.Exited = physics.Exited(&s.ball, float64(s.params.Width), s.params.RespawnMargin)

	s.paint()
	return res
}

// Respawn places the ball back at the spawn point at rest and repaints.
func (s *Sim) Respawn() {
	physics.Respawn(&s.ball, s.params.Spawn)
	s.paint()
}

// Nudge adds a velocity impulse to the ball.
func (s *Sim) Nudge(dv vmath.Vec2) {
	s.ball.Vel = s.ball.Vel.Add(dv)
}

// SetRamp replaces the ramp and repaints. Vertical ramps are rejected.
func (s *Sim) SetRamp(start, end vmath.Vec2) error {
	ramp, err := core.NewSegment(start, end)
	if err != nil {
		return err
	}
	s.ramp = ramp
	s.paint()
	return nil
}

// ScaleGravity multiplies gravity by the given factor, clamped to keep
// the ball falling.
func (s *Sim) ScaleGravity(factor float64) {
	s.params.Gravity = vmath.Clamp(s.params.Gravity*factor, 1, 10000)
}

func (s *Sim) paint() {
	s.grid.Clear(render.Background)
	render.DrawSegment(s.grid, s.ramp)
	render.DrawCircle(s.grid, s.ball.Shape())
}

// Grid exposes the current frame's pixel buffer.
func (s *Sim) Grid() *render.Grid { return s.grid }

// Ball returns a copy of the current ball state.
func (s *Sim) Ball() core.Ball { return s.ball }

// Ramp returns the current ramp segment.
func (s *Sim) Ramp() core.Segment { return s.ramp }

// Params returns the simulation configuration.
func (s *Sim) Params() parameter.Params { return s.params }
