package middleware

import (
	"net/http"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/auth"
	"github.com/D4rK14/Control-de-asistencia/internal/handler/http/response"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/accesstime"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/clock"
)

// AccessWindow rejects requests made while the system is closed
// (22:00-06:00). It guards the registration routes; the login flows run
// the same check inside the auth service.
func AccessWindow(clk clock.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if accesstime.IsBlocked(clk.Now()) {
				response.HandleError(w, auth.ErrAccessBlocked)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
