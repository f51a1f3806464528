// Package routes binds handlers to URL patterns. Route registration stays
// here so main reads as configuration and the handler packages stay free of
// path literals.
package routes

import (
	"net/http"

	"github.com/Ibrakam/PartyLand/internal/handler"
	"github.com/Ibrakam/PartyLand/internal/middleware"
	"github.com/Ibrakam/PartyLand/internal/service"
)

// Deps contains everything the route table needs.
type Deps struct {
	Site     *handler.SiteHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Admin    *handler.AdminHandler

	AdminService *service.AdminService

	// Proxy forwards /api-proxy/api/* to the shop backend.
	Proxy http.Handler

	// Metrics serves the Prometheus scrape endpoint.
	Metrics http.Handler

	// StrictLimiter guards checkout submission and admin login.
	StrictLimiter func(http.Handler) http.Handler
}

// requireAdmin builds the admin gate middleware from deps.
func (d Deps) requireAdmin() func(http.Handler) http.Handler {
	return middleware.RequireAdmin(d.AdminService)
}
