package holiday

import "context"

// HolidayRepository reads the pre-provisioned holiday dataset.
type HolidayRepository interface {
	// ListAll retrieves every holiday entry, ordered by date.
	ListAll(ctx context.Context) ([]HolidayEntry, error)
}

// Calendar answers holiday questions against an immutable snapshot of
// the dataset loaded at process start. A restart picks up dataset changes.
type Calendar interface {
	IsHoliday(date string) bool
	ForYear(year int) []HolidayEntry
}
