package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now().Add(-time.Second)
	actual := clock.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() = %v, expected between %v and %v", actual, before, after)
	}
	if actual.Location() != time.UTC {
		t.Errorf("RealClock.Now() location = %v, want UTC", actual.Location())
	}
	if actual.Nanosecond() != 0 {
		t.Errorf("RealClock.Now() should be truncated to seconds, got %d ns", actual.Nanosecond())
	}
}

func TestFakeClock(t *testing.T) {
	fixedTime := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	clock := NewFakeClock(fixedTime)

	if got := clock.Now(); !got.Equal(fixedTime) {
		t.Errorf("FakeClock.Now() = %v, want %v", got, fixedTime)
	}

	clock.Advance(90 * time.Minute)
	want := fixedTime.Add(90 * time.Minute)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("after Advance, Now() = %v, want %v", got, want)
	}
}
