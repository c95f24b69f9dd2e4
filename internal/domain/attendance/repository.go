package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// The (user_id, date) pair is unique at the storage layer; Create and
// SetCheckOut are the atomic operations the engine relies on to stay
// correct under concurrent registrations for the same user and day.
type AttendanceRepository interface {
	// Create inserts a new record for (attendance.UserID, attendance.Date).
	// If a record for that pair already exists it returns ErrAlreadyCheckedIn
	// without modifying anything (insert-if-absent on the unique constraint).
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user on a date.
	// Returns nil (no error) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// SetCheckOut completes a record: it sets check_out_time and the final
	// category only if check_out_time is still null. Returns
	// ErrAlreadyCheckedOut when the conditional update matches no row.
	SetCheckOut(ctx context.Context, userID string, date time.Time, checkOut time.Time, category Category) (Attendance, error)

	// ListByUser retrieves a user's records, newest date first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)
}
