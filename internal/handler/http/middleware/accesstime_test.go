package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/D4rK14/Control-de-asistencia/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func TestAccessWindow(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name       string
		now        time.Time
		wantStatus int
	}{
		{"open at midday", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), http.StatusOK},
		{"open at 06:00", time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC), http.StatusOK},
		{"blocked at 22:00", time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC), http.StatusForbidden},
		{"blocked at 03:00", time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC), http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			handler := AccessWindow(clock.Fixed{Instant: c.now})(okHandler)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances/register", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, c.wantStatus, rec.Code)
		})
	}
}
