package kernel

import "time"

// Clock is the source of the current instant for everything that stamps
// createdAt, finishedAt or computes "today".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t. Useful for tests and offline tooling.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
