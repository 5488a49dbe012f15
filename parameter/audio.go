package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Bounce Sound
const (
	BounceSoundFrequency = 880.0 // Hz
	BounceSoundDuration  = 60 * time.Millisecond
	BounceSoundAttack    = 2 * time.Millisecond
	BounceSoundRelease   = 45 * time.Millisecond

	// BounceSoundBaseGain is the amplitude at BounceSoundFullGainSpeed
	BounceSoundBaseGain = 0.4

	// BounceSoundFullGainSpeed is the impact speed mapped to full volume;
	// slower impacts play proportionally quieter
	BounceSoundFullGainSpeed = 40.0

	// BounceSoundCooldown suppresses retrigger chatter while the ball settles
	BounceSoundCooldown = 70 * time.Millisecond
)

// Respawn Sound
// Two-note rising chirp played when the ball is placed back at the spawn
// point.
const (
	RespawnSoundNote1Freq     = 659.26 // E5
	RespawnSoundNote2Freq     = 880.0  // A5
	RespawnSoundNote1Duration = 70 * time.Millisecond
	RespawnSoundNote2Duration = 140 * time.Millisecond
	RespawnSoundAttack        = 3 * time.Millisecond
	RespawnSoundNote1Release  = 40 * time.Millisecond
	RespawnSoundNote2Release  = 110 * time.Millisecond
	RespawnSoundGain          = 0.25
)
