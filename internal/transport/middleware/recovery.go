package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/homeledger/homeledger/pkg/logger"
)

// RecoveryMiddleware converts handler panics into a 500 response. The stack
// is logged through the request's trace-scoped logger; the response body
// stays generic so panic details never reach the client.
func RecoveryMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.From(r.Context()).Error("panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()))

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
