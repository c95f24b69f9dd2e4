// Package clock provides the application wall clock. Every time-based
// decision in the system (access window, classification, record dates)
// reads the current instant through a Clock pinned to the single
// configured timezone, so services never call time.Now directly.
package clock

import "time"

// Clock supplies the current wall-clock instant in the application timezone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type fixedZoneClock struct {
	loc *time.Location
}

// NewFixedZone returns a real clock that reports time in loc.
func NewFixedZone(loc *time.Location) Clock {
	return &fixedZoneClock{loc: loc}
}

func (c *fixedZoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *fixedZoneClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a single instant, used in tests and
// anywhere a computation must be replayed against a known time.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

func (f Fixed) Location() *time.Location {
	return f.Instant.Location()
}
