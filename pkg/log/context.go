package log

import "context"

type ctxKey int

// RequestIDKey is the context key under which the request-ID middleware
// stores the per-request identifier.
const RequestIDKey ctxKey = iota

// WithRequestID returns a child context carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
