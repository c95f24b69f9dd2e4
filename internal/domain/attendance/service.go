package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Register processes a check-in or check-out mark for a user,
	// classifying it against the fixed work schedule.
	Register(ctx context.Context, userID string, event EventType) (AttendanceResponse, error)

	// GetMyAttendance retrieves the authenticated user's records, newest first.
	GetMyAttendance(ctx context.Context, userID string) (ListAttendanceResponse, error)

	// AutoMarkHoliday grants default "present" records to every active
	// user on a holiday date. Idempotent; a no-op on working days.
	AutoMarkHoliday(ctx context.Context, date time.Time) (HolidayMarkSummary, error)
}
