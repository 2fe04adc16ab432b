package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/enigmactf/enigma/internal/api/response"
	"github.com/enigmactf/enigma/internal/auth"
)

// OperatorAuth is middleware that gates the team administration surface
// behind the operator bearer key. With no key configured the surface
// answers 503 rather than silently opening up.
func OperatorAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			header := r.Header.Get("Authorization")
			rawKey := strings.TrimPrefix(header, "Bearer ")
			if header == "" || rawKey == header {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Operator key is required", requestID)
				return
			}

			if err := authService.Verify(rawKey); err != nil {
				if errors.Is(err, auth.ErrNotConfigured) {
					response.Err(w, http.StatusServiceUnavailable, "ADMIN_DISABLED", "Team administration is not configured", requestID)
					return
				}
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid operator key", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
