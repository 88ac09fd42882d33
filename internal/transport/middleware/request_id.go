package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

const RequestIDHeader = "X-Request-Id"

// RequestID attaches a request id to the context and response headers.
// An incoming X-Request-Id is reused so ids survive proxies.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
