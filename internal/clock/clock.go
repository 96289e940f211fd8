// Package clock supplies the current instant to the presence domain.
//
// The domain never reads the system clock itself; every validating operation
// takes an externally observed "now". Clock is the collaborator that produces
// those instants, always tagged as UTC.
package clock

import "time"

// Clock produces the current instant in UTC.
type Clock interface {
	Now() time.Time
}

// System reads the operating system clock.
type System struct{}

// Now returns the current system time in UTC.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Intended for tests and for replaying
// recorded scenarios.
type Fixed struct {
	// Instant is the value returned by every Now call.
	Instant time.Time
}

// Now returns the fixed instant in UTC.
func (f Fixed) Now() time.Time {
	return f.Instant.UTC()
}
