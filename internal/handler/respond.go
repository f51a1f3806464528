// Package handler implements the storefront's JSON HTTP surface. Handlers
// decode input, call a service and encode the result; every error path goes
// through Error so codes map to HTTP statuses in exactly one place.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/telemetry"
)

// ErrorCodeToHTTPStatus maps a domain error code onto an HTTP status.
func ErrorCodeToHTTPStatus(code string) int {
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

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Error writes a JSON error response. Internal details are logged, never
// sent to the client.
func Error(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)

	if status >= 500 {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		telemetry.CaptureError(r.Context(), err, map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = domain.ErrorMessage(err)

	JSON(w, status, body)
}

// JSON writes a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Decode reads a JSON request body into dst.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Invalid("request.decode", "Invalid JSON body")
	}
	return nil
}
