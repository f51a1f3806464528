package middleware

import (
	"net/http"

	"github.com/Ibrakam/PartyLand/internal/domain"
)

// Common size limits.
const (
	kb = 1024

	// DefaultMaxBodySize bounds JSON request bodies. Carts and checkout
	// drafts are tiny; 64KB leaves generous headroom.
	DefaultMaxBodySize = 64 * kb
)

// MaxBodySize rejects request bodies above the limit with 400. Bodies are
// also wrapped in MaxBytesReader so chunked uploads can't lie about length.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > maxBytes {
				respondWithError(w, r, domain.Invalid("request.body", "Request body too large"))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
