package engine

import (
	"testing"
	"time"
)

func TestTimeProviderMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(2 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	expected := newTime.Add(1 * time.Hour)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}
}

func TestMockTimeProviderSleepLedger(t *testing.T) {
	startTime := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	mock.Sleep(33 * time.Millisecond)
	mock.Sleep(2 * time.Second)

	expected := startTime.Add(33*time.Millisecond + 2*time.Second)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected sleeps to advance clock to %v, got %v", expected, now)
	}

	sleeps := mock.Sleeps()
	if len(sleeps) != 2 || sleeps[0] != 33*time.Millisecond || sleeps[1] != 2*time.Second {
		t.Errorf("Expected sleep ledger [33ms 2s], got %v", sleeps)
	}
}
