package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/bounce/parameter"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	if osc == nil {
		t.Fatal("Expected non-nil oscillator")
	}

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)

	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	// Square wave should only have values of -1.0 or 1.0
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expectedSamples*2)
	n, _ := osc.Stream(samples)

	if n != expectedSamples {
		t.Errorf("Expected exactly %d samples, got %d", expectedSamples, n)
	}

	n2, ok2 := osc.Stream(samples[:10])
	if ok2 {
		t.Error("Expected second stream to return ok=false after duration exceeded")
	}
	if n2 != 0 {
		t.Errorf("Expected 0 samples after duration, got %d", n2)
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	// Square wave keeps the carrier amplitude constant so only the
	// envelope shapes the output
	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, 10*time.Millisecond, rate)

	attackSamples := rate.N(attack)
	samples := make([][2]float64, attackSamples)
	n, ok := env.Stream(samples)

	if !ok || n != attackSamples {
		t.Fatalf("Expected %d attack samples, got %d ok=%v", attackSamples, n, ok)
	}

	early := abs(samples[10][0])
	late := abs(samples[attackSamples-10][0])
	if early >= late {
		t.Errorf("Expected rising attack, early %f >= late %f", early, late)
	}
	if abs(samples[0][0]) > 0.001 {
		t.Errorf("Expected near-silent first sample, got %f", samples[0][0])
	}
}

// TestEnvelopeReleaseDecays verifies release ramps to silence
func TestEnvelopeReleaseDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 60 * time.Millisecond
	release := 40 * time.Millisecond

	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 2*time.Millisecond, release, rate)

	total := rate.N(duration)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)

	if n != total {
		t.Fatalf("Expected %d samples, got %d", total, n)
	}

	if last := abs(samples[total-1][0]); last > 0.01 {
		t.Errorf("Expected tail near silence, got %f", last)
	}
	mid := abs(samples[total-rate.N(release)][0])
	if mid < 0.9 {
		t.Errorf("Expected full amplitude before release, got %f", mid)
	}
}

// TestCreateBounceSoundScalesWithSpeed verifies impact speed controls gain
func TestCreateBounceSoundScalesWithSpeed(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	loud := CreateBounceSound(rate, parameter.BounceSoundFullGainSpeed)
	quiet := CreateBounceSound(rate, 0)

	loudPeak := streamPeak(loud, 2048)
	quietPeak := streamPeak(quiet, 2048)

	if loudPeak == 0 {
		t.Error("Expected audible blip at full impact speed")
	}
	if quietPeak != 0 {
		t.Errorf("Expected silent blip at zero impact speed, peak %f", quietPeak)
	}
}

// TestCreateRespawnSoundLength verifies the chirp plays both notes
func TestCreateRespawnSoundLength(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	chirp := CreateRespawnSound(rate)

	want := rate.N(parameter.RespawnSoundNote1Duration) + rate.N(parameter.RespawnSoundNote2Duration)
	got := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := chirp.Stream(buf)
		got += n
		if !ok {
			break
		}
	}
	if got != want {
		t.Errorf("Expected %d chirp samples, got %d", want, got)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func streamPeak(s beep.Streamer, limit int) float64 {
	peak := 0.0
	buf := make([][2]float64, 256)
	for streamed := 0; streamed < limit; {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if a := abs(buf[i][0]); a > peak {
				peak = a
			}
		}
		streamed += n
		if !ok {
			break
		}
	}
	return peak
}
