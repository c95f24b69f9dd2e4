package http

import (
	"net/http"
	"strconv"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/holiday"
	"github.com/D4rK14/Control-de-asistencia/internal/handler/http/response"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/clock"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/validator"
)

type HolidayHandler interface {
	ListForYear(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	calendar holiday.Calendar
	clock    clock.Clock
}

func NewHolidayHandler(calendar holiday.Calendar, clk clock.Clock) HolidayHandler {
	return &holidayHandlerImpl{
		calendar: calendar,
		clock:    clk,
	}
}

// ListForYear implements HolidayHandler. Defaults to the current year.
func (h *holidayHandlerImpl) ListForYear(w http.ResponseWriter, r *http.Request) {
	year := h.clock.Now().Year()

	if raw := r.URL.Query().Get("year"); raw != "" {
		if !validator.IsValidYear(raw) {
			response.BadRequest(w, "year debe ser un año válido", nil)
			return
		}
		year, _ = strconv.Atoi(raw)
	}

	entries := h.calendar.ForYear(year)
	items := make([]holiday.HolidayResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, holiday.NewHolidayResponse(e))
	}

	response.Success(w, items)
}
