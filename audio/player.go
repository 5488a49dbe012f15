package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/bounce/parameter"
)

// Player owns the speaker for the demo. Init failure leaves the player
// disabled; every playback method on a disabled player is a no-op, so
// the demo runs silent instead of failing.
type Player struct {
	enabled bool
	rate    beep.SampleRate
	last    time.Time
	now     func() time.Time
}

// NewPlayer creates a player in the disabled state. Call Init to attach
// the speaker.
func NewPlayer() *Player {
	return &Player{
		rate: beep.SampleRate(parameter.AudioSampleRate),
		now:  time.Now,
	}
}

// Init readies the speaker. The returned error is informational; the
// caller may keep running with a silent player.
func (p *Player) Init() error {
	if p.enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	p.enabled = true
	return nil
}

// Enabled reports whether the speaker is attached.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Bounce plays the impact blip at a volume scaled by impact speed.
// Impacts inside the cooldown window are dropped to avoid chatter while
// the ball settles on a surface.
func (p *Player) Bounce(speed float64) {
	if !p.enabled {
		return
	}
	if !p.gate(p.now()) {
		return
	}
	speaker.Play(CreateBounceSound(p.rate, speed))
}

// gate reports whether an impact at now may play, arming the cooldown
// when it does.
func (p *Player) gate(now time.Time) bool {
	if !p.last.IsZero() && now.Sub(p.last) < parameter.BounceSoundCooldown {
		return false
	}
	p.last = now
	return true
}

// Respawned plays the respawn chirp.
func (p *Player) Respawned() {
	if !p.enabled {
		return
	}
	speaker.Play(CreateRespawnSound(p.rate))
}

// Close detaches the speaker. Safe to call on a disabled player.
func (p *Player) Close() {
	if !p.enabled {
		return
	}
	speaker.Close()
	p.enabled = false
}
