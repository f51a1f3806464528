// Package middleware holds the HTTP middleware chain: request ids,
// request-scoped logging, metrics, panic recovery, rate limits and the
// admin session gate.
package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/telemetry"
)

type contextKey string

// respondWithError writes a JSON error from middleware. It mirrors
// handler.Error but stays self-contained so the packages don't import each
// other.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := errorCodeToHTTPStatus(code)

	logger := GetLogger(r.Context())
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
	}
	if reqID := GetRequestID(r.Context()); reqID != "" {
		attrs = append(attrs, "request_id", reqID)
	}
	if status >= 500 {
		logger.Error("middleware error", attrs...)
	} else {
		logger.Info("middleware error", attrs...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": domain.ErrorMessage(err),
		},
	})
}

func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests
	case domain.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Recovery turns panics into 500 responses and logs the stack position.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"request_id", GetRequestID(r.Context()),
					)
					telemetry.CaptureError(r.Context(), fmt.Errorf("panic: %v", rec), map[string]any{
						"path":   r.URL.Path,
						"method": r.Method,
					})
					respondWithError(w, r, domain.Errorf(domain.EINTERNAL, "", "An unexpected error occurred"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
