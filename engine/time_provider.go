package engine

import "time"

// Clock abstracts the loop's time source so frame pacing and the respawn
// delay can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep blocks for the given duration
func (p *TimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
