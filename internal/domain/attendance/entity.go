package attendance

import (
	"time"
)

// StatePresent is the default attendance state. The state taxonomy is
// owned by the administrative side of the system; the engine only ever
// assigns this value and carries existing ones through unchanged.
const StatePresent = 1

// Attendance is one user's record for one calendar date. CheckInTime is
// set exactly once when the record is created; CheckOutTime is set
// exactly once afterwards and the record is immutable from then on.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	StateID      int
	CategoryID   Category
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CheckedOut reports whether the record has been completed by a check-out.
func (a Attendance) CheckedOut() bool {
	return a.CheckOutTime != nil
}
