package attendance

import (
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/validator"
)

// RegisterRequest is the body of the attendance registration endpoint.
type RegisterRequest struct {
	Type string `json:"tipo"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "tipo", Message: "es requerido"})
	} else if !EventType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "tipo", Message: "debe ser 'entrada' o 'salida'"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the wire representation of a record.
type AttendanceResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"id_usuario"`
	Date         string  `json:"fecha"`
	CheckInTime  *string `json:"hora_entrada"`
	CheckOutTime *string `json:"hora_salida"`
	StateID      int     `json:"id_estado"`
	CategoryID   int     `json:"id_categoria"`
	Category     string  `json:"categoria"`
}

// ListAttendanceResponse wraps a user's attendance history.
type ListAttendanceResponse struct {
	Items []AttendanceResponse `json:"items"`
	Total int                  `json:"total"`
}

// HolidayMarkSummary reports the outcome of one auto-mark run.
type HolidayMarkSummary struct {
	Date    string `json:"fecha"`
	Holiday bool   `json:"es_feriado"`
	Created int    `json:"creadas"`
	Skipped int    `json:"omitidas"`
}

// NewAttendanceResponse formats an entity for the API.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Date:       a.Date.Format("2006-01-02"),
		StateID:    a.StateID,
		CategoryID: int(a.CategoryID),
		Category:   a.CategoryID.String(),
	}
	if a.CheckInTime != nil {
		s := a.CheckInTime.Format("15:04:05")
		resp.CheckInTime = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.Format("15:04:05")
		resp.CheckOutTime = &s
	}
	return resp
}
