package postgresql

import (
	"context"
	"fmt"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/holiday"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListAll implements holiday.HolidayRepository.
func (r *holidayRepository) ListAll(ctx context.Context) ([]holiday.HolidayEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT date, label FROM holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var entries []holiday.HolidayEntry
	for rows.Next() {
		var e holiday.HolidayEntry
		if err := rows.Scan(&e.Date, &e.Label); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return entries, nil
}
