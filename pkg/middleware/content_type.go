package middleware

import (
	"mime"
	"net/http"

	httputil "github.com/winthrop-intelligence/phone-wrangler/pkg/http"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
)

const (
	contentTypeJSON           = "application/json"
	codeUnsupportedMediaType  = "UNSUPPORTED_MEDIA_TYPE"
	codeRateLimited           = "RATE_LIMITED"
	codeRequestEntityTooLarge = "REQUEST_TOO_LARGE"
)

func ContentTypeValidation(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requiresContentType(r.Method) {
				contentType := extractContentType(r.Header.Get("Content-Type"))

				if contentType != contentTypeJSON {
					log.Warn("Invalid Content-Type header",
						"request_id", RequestIDFromContext(r.Context()),
						"content_type", contentType,
						"path", r.URL.Path,
						"method", r.Method,
					)
					writeError(w, http.StatusUnsupportedMediaType, codeUnsupportedMediaType, "Content-Type must be application/json")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requiresContentType(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func extractContentType(header string) string {
	if header == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return mediaType
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	_ = httputil.WriteJSON(w, status, httputil.ErrorResponse{Code: code, Error: message})
}
