package attendance

import "errors"

// Attendance domain errors
var (
	// Registration errors
	ErrAlreadyCheckedIn  = errors.New("ya registraste tu entrada hoy")
	ErrNotCheckedIn      = errors.New("no has marcado entrada aún")
	ErrAlreadyCheckedOut = errors.New("ya registraste tu salida hoy")
	ErrHolidayDate       = errors.New("no se puede registrar asistencia en un día feriado")
	ErrInvalidEventType  = errors.New("tipo de marcaje inválido")

	ErrAttendanceNotFound = errors.New("registro de asistencia no encontrado")
)
