package graphql

import (
	"context"
	"net/http"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyRequestID contextKey = "requestID"

// HeaderRequestID carries the caller-supplied request ID; one is generated
// when the header is absent.
const HeaderRequestID = "X-Request-ID"

// RequestIDFromContext returns the request ID for the current request.
func RequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(CtxKeyRequestID); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// WithRequestID attaches a request ID to context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, id)
}

// RequestIDFromRequest reads the request ID header, if present.
func RequestIDFromRequest(r *http.Request) string {
	return r.Header.Get(HeaderRequestID)
}
