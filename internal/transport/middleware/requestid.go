package middleware

import (
	"net/http"

	"github.com/homeledger/homeledger/pkg/logger"

	"github.com/google/uuid"
)

// RequestID honors a caller-supplied X-Trace-ID or mints one, echoes it on
// the response, and scopes the request's context logger to it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.WithTrace(r.Context(), traceID)
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
