// Package proxy forwards browser requests to the shop backend under a
// same-origin path, keeping images and direct API reads free of CORS.
package proxy

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/handler"
)

// Prefix is the path under which the backend API is re-exposed. A request
// to /api-proxy/api/products/ becomes <backend>/api/products/.
const Prefix = "/api-proxy"

// New builds the reverse proxy handler for the backend origin.
func New(backendURL string, logger *slog.Logger) (http.Handler, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, err
	}

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.Out.URL.Path = strings.TrimPrefix(pr.In.URL.Path, Prefix)
			pr.Out.Host = target.Host
			// The backend must never see storefront session cookies.
			pr.Out.Header.Del("Cookie")
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.WarnContext(r.Context(), "backend proxy failed",
				slog.String("path", r.URL.Path),
				slog.Any("error", err))
			handler.Error(w, r, domain.Unavailable(err, "proxy", "Shop backend is unreachable"), logger)
		},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only the backend's API surface is reachable through the proxy.
		if !strings.HasPrefix(r.URL.Path, Prefix+"/api/") {
			handler.Error(w, r, domain.NotFound("proxy", "Resource"), logger)
			return
		}
		rp.ServeHTTP(w, r)
	}), nil
}
