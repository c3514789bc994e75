package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With returns a context carrying a logger extended with the given key-value
// fields. Calls accumulate, so fields attached early in a request stay on
// every log line written for it.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, ctxKey{}, From(ctx).With(fields...))
}

// WithTrace attaches the request trace ID under the field name the rest of
// the service logs it as.
func WithTrace(ctx context.Context, traceID string) context.Context {
	return With(ctx, "trace_id", traceID)
}

// From returns the logger carried by ctx, falling back to the process-wide
// logger when the context has none.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
