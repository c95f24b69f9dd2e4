package holiday

import (
	"testing"
	"time"

	domain "github.com/D4rK14/Control-de-asistencia/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testEntries() []domain.HolidayEntry {
	return []domain.HolidayEntry{
		{Date: day(2025, time.January, 1), Label: "Año Nuevo"},
		{Date: day(2025, time.September, 18), Label: "Independencia Nacional"},
		{Date: day(2025, time.December, 25), Label: "Navidad"},
		{Date: day(2026, time.January, 1), Label: "Año Nuevo"},
	}
}

func TestCalendar_IsHoliday(t *testing.T) {
	cal := NewCalendar(testEntries())

	assert.True(t, cal.IsHoliday("2025-09-18"))
	assert.True(t, cal.IsHoliday("2026-01-01"))
	assert.False(t, cal.IsHoliday("2025-09-17"))
	assert.False(t, cal.IsHoliday("2024-01-01"))
	assert.False(t, cal.IsHoliday(""))
}

func TestCalendar_ForYear(t *testing.T) {
	cal := NewCalendar(testEntries())

	year2025 := cal.ForYear(2025)
	assert.Len(t, year2025, 3)

	year2026 := cal.ForYear(2026)
	assert.Len(t, year2026, 1)
	assert.Equal(t, "Año Nuevo", year2026[0].Label)

	assert.Empty(t, cal.ForYear(1999))
}

func TestCalendar_ForYearCopies(t *testing.T) {
	cal := NewCalendar(testEntries())

	got := cal.ForYear(2025)
	got[0].Label = "mutated"

	again := cal.ForYear(2025)
	assert.NotEqual(t, "mutated", again[0].Label)
}
