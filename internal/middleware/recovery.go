// AngelaMos | 2026
// recovery.go

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/courtbook-dev/courtbook/internal/core"
)

func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"request_id", GetRequestID(r.Context()),
						"stack", string(debug.Stack()),
					)
					core.InternalServerError(w, http.ErrAbortHandler)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
