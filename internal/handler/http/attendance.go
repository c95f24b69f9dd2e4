package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/attendance"
	"github.com/D4rK14/Control-de-asistencia/internal/domain/auth"
	"github.com/D4rK14/Control-de-asistencia/internal/handler/http/middleware"
	"github.com/D4rK14/Control-de-asistencia/internal/handler/http/response"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/clock"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/validator"
)

type AttendanceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	AutoMarkHoliday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	clock             clock.Clock
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, clk clock.Clock) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		clock:             clk,
	}
}

// Register implements AttendanceHandler.
func (h *attendanceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req attendance.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode register request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Register(r.Context(), userID, attendance.EventType(req.Type))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if req.Type == string(attendance.EventCheckIn) {
		response.Created(w, "Entrada registrada con éxito", result)
		return
	}
	response.SuccessWithMessage(w, "Salida registrada con éxito", result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.GetMyAttendance(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AutoMarkHoliday implements AttendanceHandler. Admin-triggered variant
// of the daily job; defaults to today when no date is given.
func (h *attendanceHandlerImpl) AutoMarkHoliday(w http.ResponseWriter, r *http.Request) {
	date := h.clock.Now()

	if raw := r.URL.Query().Get("fecha"); raw != "" {
		if !validator.IsValidDate(raw) {
			response.BadRequest(w, "fecha debe tener formato YYYY-MM-DD", nil)
			return
		}
		parsed, _ := time.ParseInLocation("2006-01-02", raw, h.clock.Location())
		date = parsed
	}

	summary, err := h.attendanceService.AutoMarkHoliday(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
