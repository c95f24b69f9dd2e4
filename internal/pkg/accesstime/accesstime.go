// Package accesstime implements the daily access window policy.
// The system is closed between 22:00 and 06:00 local time: logins and
// attendance registrations are rejected during that interval, and
// session lifetimes are capped so they expire at the next 22:00.
package accesstime

import "time"

const (
	// BlockStartHour is the first blocked hour of the evening (inclusive).
	BlockStartHour = 22
	// BlockEndHour is the first allowed hour of the morning.
	BlockEndHour = 6
)

// IsBlocked reports whether now falls inside the blocked period,
// from 22:00 (inclusive) until 06:00 (exclusive). now must already be
// in the application timezone.
func IsBlocked(now time.Time) bool {
	hour := now.Hour()
	return hour >= BlockStartHour || hour < BlockEndHour
}

// UntilNextBlock returns the time remaining until the next 22:00:
// today's if it has not passed yet, otherwise tomorrow's. Collaborators
// use it to size session lifetimes so they never outlive the window.
// At exactly 22:00:00 it returns 24h rather than 0; every caller gates
// on IsBlocked first, which rejects that instant outright.
func UntilNextBlock(now time.Time) time.Duration {
	target := time.Date(now.Year(), now.Month(), now.Day(), BlockStartHour, 0, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(now)
}
