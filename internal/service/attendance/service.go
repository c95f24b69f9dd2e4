package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/attendance"
	"github.com/D4rK14/Control-de-asistencia/internal/domain/holiday"
	"github.com/D4rK14/Control-de-asistencia/internal/domain/user"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/clock"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/database"
	"github.com/D4rK14/Control-de-asistencia/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	user.UserRepository
	calendar holiday.Calendar
	clock    clock.Clock
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	calendar holiday.Calendar,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
		calendar:             calendar,
		clock:                clk,
	}
}

// dateOnly truncates an instant to its calendar date, keeping the location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Register implements attendance.AttendanceService. The record store
// enforces uniqueness per (user, date); this method never does a
// check-then-create for check-ins, so two concurrent marks for the same
// user resolve to exactly one record.
func (a *AttendanceServiceImpl) Register(ctx context.Context, userID string, event attendance.EventType) (attendance.AttendanceResponse, error) {
	if !event.Valid() {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidEventType
	}

	now := a.clock.Now()
	today := dateOnly(now)

	u, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.AttendanceResponse{}, user.ErrUserInactive
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if !u.Active() {
		return attendance.AttendanceResponse{}, user.ErrUserInactive
	}

	// Holiday dates are written only by the auto-marker
	if a.calendar.IsHoliday(today.Format("2006-01-02")) {
		return attendance.AttendanceResponse{}, attendance.ErrHolidayDate
	}

	if event == attendance.EventCheckIn {
		return a.registerCheckIn(ctx, userID, today, now)
	}
	return a.registerCheckOut(ctx, userID, today, now)
}

func (a *AttendanceServiceImpl) registerCheckIn(ctx context.Context, userID string, today, now time.Time) (attendance.AttendanceResponse, error) {
	category := attendance.ClassifyEvent(attendance.EventCheckIn, now)

	record, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:      userID,
		Date:        today,
		CheckInTime: &now,
		StateID:     attendance.StatePresent,
		CategoryID:  category,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("Entrada registrada",
		"user_id", userID,
		"date", today.Format("2006-01-02"),
		"category", record.CategoryID.String(),
	)
	return attendance.NewAttendanceResponse(record), nil
}

// registerCheckOut loads and completes the day's record inside one
// transaction. The update is additionally conditional on check_out_time
// still being null, so a concurrent duplicate check-out fails cleanly.
func (a *AttendanceServiceImpl) registerCheckOut(ctx context.Context, userID string, today, now time.Time) (attendance.AttendanceResponse, error) {
	var record attendance.Attendance

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := a.AttendanceRepository.GetByUserAndDate(txCtx, userID, today)
		if err != nil {
			return fmt.Errorf("failed to load attendance record: %w", err)
		}
		if existing == nil {
			return attendance.ErrNotCheckedIn
		}
		if existing.CheckedOut() {
			return attendance.ErrAlreadyCheckedOut
		}

		exitCategory := attendance.ClassifyEvent(attendance.EventCheckOut, now)
		finalCategory := attendance.Combine(existing.CategoryID, exitCategory)

		record, err = a.AttendanceRepository.SetCheckOut(txCtx, userID, today, now, finalCategory)
		if err != nil && !errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return fmt.Errorf("failed to complete attendance record: %w", err)
		}
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("Salida registrada",
		"user_id", userID,
		"date", today.Format("2006-01-02"),
		"category", record.CategoryID.String(),
	)
	return attendance.NewAttendanceResponse(record), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, userID string) (attendance.ListAttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByUser(ctx, userID, 365)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Items: make([]attendance.AttendanceResponse, 0, len(records)),
		Total: len(records),
	}
	for _, r := range records {
		resp.Items = append(resp.Items, attendance.NewAttendanceResponse(r))
	}
	return resp, nil
}

// AutoMarkHoliday implements attendance.AttendanceService. Every active
// user without a record for the date gets a symbolic midnight record;
// existing records are left untouched, so reruns are no-ops.
func (a *AttendanceServiceImpl) AutoMarkHoliday(ctx context.Context, date time.Time) (attendance.HolidayMarkSummary, error) {
	day := dateOnly(date)
	summary := attendance.HolidayMarkSummary{Date: day.Format("2006-01-02")}

	if !a.calendar.IsHoliday(summary.Date) {
		slog.Debug("Auto-mark skipped, not a holiday", "date", summary.Date)
		return summary, nil
	}
	summary.Holiday = true

	userIDs, err := a.UserRepository.ListActiveIDs(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list active users: %w", err)
	}

	midnight := day
	for _, id := range userIDs {
		_, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
			UserID:       id,
			Date:         day,
			CheckInTime:  &midnight,
			CheckOutTime: &midnight,
			StateID:      attendance.StatePresent,
			CategoryID:   attendance.CategoryOnTimeIn,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("failed to auto-mark user %s: %w", id, err)
		}
		summary.Created++
	}

	slog.Info("Marcado automático de feriado finalizado",
		"date", summary.Date,
		"created", summary.Created,
		"skipped", summary.Skipped,
	)
	return summary, nil
}
