package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/attendance"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/clock"
)

// HolidayJobs owns the scheduled side of the attendance engine: the
// daily pass that grants default presence on holiday dates.
type HolidayJobs struct {
	attendanceSvc attendance.AttendanceService
	clock         clock.Clock
}

func NewHolidayJobs(attendanceSvc attendance.AttendanceService, clk clock.Clock) *HolidayJobs {
	return &HolidayJobs{
		attendanceSvc: attendanceSvc,
		clock:         clk,
	}
}

func (j *HolidayJobs) Jobs() []Job {
	return []Job{{
		Name:     "auto_mark_holiday_attendance",
		Interval: time.Hour,
		Run:      j.AutoMarkHolidayAttendance,
	}}
}

// AutoMarkHolidayAttendance runs hourly but only acts during the first
// hour of the local day, so each date is processed once. The underlying
// service is idempotent, so an extra run within the hour is harmless.
func (j *HolidayJobs) AutoMarkHolidayAttendance(ctx context.Context) error {
	now := j.clock.Now()
	if now.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: starting holiday auto-mark job", "date", now.Format("2006-01-02"))

	summary, err := j.attendanceSvc.AutoMarkHoliday(ctx, now)
	if err != nil {
		return fmt.Errorf("holiday auto-mark failed: %w", err)
	}

	if !summary.Holiday {
		slog.Info("Cron: not a holiday, nothing to mark", "date", summary.Date)
		return nil
	}

	slog.Info("Cron: holiday auto-mark finished",
		"date", summary.Date,
		"created", summary.Created,
		"skipped", summary.Skipped,
	)
	return nil
}
