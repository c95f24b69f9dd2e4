package middleware

import (
	"net/http"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/auth"
	"github.com/D4rK14/Control-de-asistencia/internal/domain/user"
	"github.com/D4rK14/Control-de-asistencia/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleAdmin {
			response.Forbidden(w, "se requieren privilegios de administrador")
			return
		}

		next.ServeHTTP(w, r)
	})
}
