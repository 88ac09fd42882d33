package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// statusWriter captures the status code written by downstream handlers.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Logger emits one structured access log line per request.
func Logger(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			}
			if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}
			if accountID, ok := ctxutil.AccountIDFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.Int64("account_id", accountID))
			}

			switch {
			case sw.status >= http.StatusInternalServerError:
				log.Error("http request", attrs...)
			case sw.status >= http.StatusBadRequest:
				log.Warn("http request", attrs...)
			default:
				log.Info("http request", attrs...)
			}
		})
	}
}
