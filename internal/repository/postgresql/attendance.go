package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/attendance"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// timeOfDay converts a wall-clock instant into a pgtype.Time value for
// the TIME columns, keeping only the time-of-day component.
func timeOfDay(t time.Time) pgtype.Time {
	us := int64(t.Hour())*3600*1e6 + int64(t.Minute())*60*1e6 + int64(t.Second())*1e6
	return pgtype.Time{Microseconds: us, Valid: true}
}

// onDate projects a stored time-of-day back onto its record's date so
// callers get a full time.Time in the record's location.
func onDate(date time.Time, t pgtype.Time) *time.Time {
	if !t.Valid {
		return nil
	}
	at := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(t.Microseconds) * time.Microsecond)
	return &at
}

// Create implements attendance.AttendanceRepository. The insert relies
// on the (user_id, date) unique constraint: a concurrent duplicate
// check-in loses the race and surfaces as ErrAlreadyCheckedIn instead
// of a second row.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, date, check_in_time, check_out_time, state_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT attendances_user_date_key DO NOTHING
		RETURNING id, created_at, updated_at
	`

	var checkIn, checkOut pgtype.Time
	if newAttendance.CheckInTime != nil {
		checkIn = timeOfDay(*newAttendance.CheckInTime)
	}
	if newAttendance.CheckOutTime != nil {
		checkOut = timeOfDay(*newAttendance.CheckOutTime)
	}

	err := q.QueryRow(ctx, query,
		newAttendance.UserID,
		newAttendance.Date,
		checkIn,
		checkOut,
		newAttendance.StateID,
		int(newAttendance.CategoryID),
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			// Conflict: a record for (user, date) already exists
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in_time, check_out_time, state_id, category_id,
			   created_at, updated_at
		FROM attendances
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// SetCheckOut implements attendance.AttendanceRepository. The update is
// conditional on check_out_time still being null, so two concurrent
// check-outs cannot both complete the record; classification and write
// land in a single statement.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, userID string, date time.Time, checkOut time.Time, category attendance.Category) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out_time = $3,
			category_id = $4,
			updated_at = NOW()
		WHERE user_id = $1
		  AND date = $2
		  AND check_out_time IS NULL
		RETURNING id, user_id, date, check_in_time, check_out_time, state_id, category_id,
				  created_at, updated_at
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date, timeOfDay(checkOut), int(category)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return att, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in_time, check_out_time, state_id, category_id,
			   created_at, updated_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return result, nil
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var checkIn, checkOut pgtype.Time
	var categoryID int

	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &checkIn, &checkOut, &att.StateID, &categoryID,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.CategoryID = attendance.Category(categoryID)
	att.CheckInTime = onDate(att.Date, checkIn)
	att.CheckOutTime = onDate(att.Date, checkOut)
	return att, nil
}
