package middleware

import (
	"net/http"
	"runtime/debug"

	apperrors "github.com/winthrop-intelligence/phone-wrangler/pkg/errors"
	httputil "github.com/winthrop-intelligence/phone-wrangler/pkg/http"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
)

func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("Panic recovered",
						"request_id", RequestIDFromContext(r.Context()),
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)

					_ = httputil.WriteError(w, apperrors.Internal("panic recovered", nil))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
