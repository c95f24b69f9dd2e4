package holiday

import (
	"context"
	"fmt"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/holiday"
)

// calendar is an immutable snapshot of the holiday dataset, indexed by
// date string and by year. It is built once at startup; the dataset is
// never written at runtime, so no invalidation is needed.
type calendar struct {
	byDate map[string]holiday.HolidayEntry
	byYear map[int][]holiday.HolidayEntry
}

// LoadCalendar reads the full holiday dataset and builds the in-memory
// calendar the engine consults on every registration.
func LoadCalendar(ctx context.Context, repo holiday.HolidayRepository) (holiday.Calendar, error) {
	entries, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday dataset: %w", err)
	}
	return NewCalendar(entries), nil
}

// NewCalendar builds a calendar from a fixed set of entries.
func NewCalendar(entries []holiday.HolidayEntry) holiday.Calendar {
	c := &calendar{
		byDate: make(map[string]holiday.HolidayEntry, len(entries)),
		byYear: make(map[int][]holiday.HolidayEntry),
	}
	for _, e := range entries {
		key := e.Date.Format("2006-01-02")
		c.byDate[key] = e
		c.byYear[e.Date.Year()] = append(c.byYear[e.Date.Year()], e)
	}
	return c
}

// IsHoliday implements holiday.Calendar. date is a YYYY-MM-DD string.
func (c *calendar) IsHoliday(date string) bool {
	_, ok := c.byDate[date]
	return ok
}

// ForYear implements holiday.Calendar.
func (c *calendar) ForYear(year int) []holiday.HolidayEntry {
	entries := c.byYear[year]
	out := make([]holiday.HolidayEntry, len(entries))
	copy(out, entries)
	return out
}
