package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a raw audio wave for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, keep in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a volume effect
// math.Log2(0) is -Inf, so zero volume switches to silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateBounceSound generates the impact blip. Gain scales linearly with
// impact speed up to BounceSoundFullGainSpeed, so soft landings are quiet.
func CreateBounceSound(rate beep.SampleRate, speed float64) beep.Streamer {
	osc := NewOscillator(parameter.BounceSoundFrequency, parameter.BounceSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)

	gain := vmath.Clamp(speed/parameter.BounceSoundFullGainSpeed, 0, 1)
	return newVolume(shaped, parameter.BounceSoundBaseGain*gain)
}

// CreateRespawnSound generates a two-note rising chirp for ball respawn
func CreateRespawnSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.RespawnSoundNote1Freq, parameter.RespawnSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.RespawnSoundNote1Duration, parameter.RespawnSoundAttack, parameter.RespawnSoundNote1Release, rate)

	n2 := NewOscillator(parameter.RespawnSoundNote2Freq, parameter.RespawnSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.RespawnSoundNote2Duration, parameter.RespawnSoundAttack, parameter.RespawnSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), parameter.RespawnSoundGain)
}
