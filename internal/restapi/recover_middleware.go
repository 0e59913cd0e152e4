package restapi

import (
	"log/slog"
	"net/http"

	"dashboard.aifa.mx/internal/logging"
)

// NewRecoverPanicMiddleware turns a handler panic into a logged 500 response.
func NewRecoverPanicMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				logging.LogPanic(logger, "handler panicked", recovered,
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				w.Header().Set("Connection", "close")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
