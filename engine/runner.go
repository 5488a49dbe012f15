package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/terminal"
)

// Listener receives simulation notifications for sound playback.
type Listener interface {
	Bounce(speed float64)
	Respawned()
}

// Stats counts loop activity since Run started.
type Stats struct {
	Frames   uint64
	Bounces  uint64
	Respawns uint64
}

// Runner drives the loop: step, encode, emit, sleep. The time source is
// injectable so tests run without real delays, and the output session
// wraps any io.Writer so tests capture exact frame bytes.
type Runner struct {
	sim   *Sim
	out   *terminal.Session
	clock Clock

	// Listener, Logger and MaxFrames may be set before Run. A zero
	// MaxFrames runs until the context is cancelled.
	Listener  Listener
	Logger    *log.Logger
	MaxFrames uint64

	stats     Stats
	lastStats time.Time
}

// NewRunner wires the simulation to an output session and a time source.
func NewRunner(sim *Sim, out *terminal.Session, clock Clock) *Runner {
	return &Runner{sim: sim, out: out, clock: clock}
}

// Stats returns a copy of the loop counters.
func (r *Runner) Stats() Stats {
	return r.stats
}

// Run executes the loop until the context is cancelled or MaxFrames is
// reached. Sink write errors are fatal and returned; there is no degraded
// mode for a continuous visual loop. Respawn waits with the last frame on
// screen, matching the frame-pacing sleep in kind.
func (r *Runner) Run(ctx context.Context) error {
	interval := r.sim.Params().FrameInterval()
	dt := r.sim.Params().DT()
	r.lastStats = r.clock.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		res := r.sim.Step(dt)
		r.stats.Frames++
		if res.Bounced {
			r.stats.Bounces++
			if r.Listener != nil {
				r.Listener.Bounce(res.ImpactSpeed)
			}
		}

		if err := r.writeFrame(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		if res.Exited {
			r.clock.Sleep(r.sim.Params().RespawnDelay)
			r.sim.Respawn()
			r.stats.Respawns++
			if r.Listener != nil {
				r.Listener.Respawned()
			}
		}

		r.logStats()

		if r.MaxFrames > 0 && r.stats.Frames >= r.MaxFrames {
			return nil
		}
		r.clock.Sleep(interval)
	}
}

func (r *Runner) writeFrame() error {
	grid := r.sim.Grid()
	sc := render.NewRowPairScanner(grid)
	for sc.Scan() {
		if err := r.out.WriteRow(sc.Bytes()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return r.out.EndFrame(grid.Height()/2, grid.Width())
}

// logStats emits one counters line per elapsed second of simulated time.
func (r *Runner) logStats() {
	if r.Logger == nil {
		return
	}
	now := r.clock.Now()
	if now.Sub(r.lastStats) < time.Second {
		return
	}
	r.lastStats = now
	ball := r.sim.Ball()
	r.Logger.Printf("frames=%d bounces=%d respawns=%d ball=(%.1f, %.1f) vel=(%.1f, %.1f)",
		r.stats.Frames, r.stats.Bounces, r.stats.Respawns,
		ball.Pos.X, ball.Pos.Y, ball.Vel.X, ball.Vel.Y)
}
