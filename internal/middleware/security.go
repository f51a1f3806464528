package middleware

import (
	"net/http"
	"strconv"
)

// SecurityHeadersConfig configures the security headers applied to every
// response.
type SecurityHeadersConfig struct {
	// ContentSecurityPolicy sets Content-Security-Policy.
	ContentSecurityPolicy string

	// FrameAncestors controls who may embed the storefront. The mini-app
	// runs inside Telegram's webview, so the default allows it.
	FrameAncestors string

	// ContentTypeNosniff sets X-Content-Type-Options: nosniff.
	ContentTypeNosniff bool

	// ReferrerPolicy sets Referrer-Policy.
	ReferrerPolicy string

	// HSTSMaxAge sets Strict-Transport-Security max-age in seconds.
	// Zero disables HSTS.
	HSTSMaxAge int
}

// DefaultSecurityHeadersConfig allows embedding by Telegram and keeps the
// rest strict.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		FrameAncestors:     "https://web.telegram.org https://*.telegram.org",
		ContentTypeNosniff: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		HSTSMaxAge:         31536000,
	}
}

// SecurityHeaders applies the configured headers to all responses.
func SecurityHeaders(config SecurityHeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.ContentTypeNosniff {
				w.Header().Set("X-Content-Type-Options", "nosniff")
			}
			if config.ReferrerPolicy != "" {
				w.Header().Set("Referrer-Policy", config.ReferrerPolicy)
			}

			csp := config.ContentSecurityPolicy
			if csp == "" && config.FrameAncestors != "" {
				csp = "frame-ancestors " + config.FrameAncestors
			}
			if csp != "" {
				w.Header().Set("Content-Security-Policy", csp)
			}

			if config.HSTSMaxAge > 0 {
				w.Header().Set("Strict-Transport-Security",
					"max-age="+strconv.Itoa(config.HSTSMaxAge)+"; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
