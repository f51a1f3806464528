package routes

import (
	"github.com/Ibrakam/PartyLand/internal/proxy"
	"github.com/Ibrakam/PartyLand/internal/router"
)

// RegisterStorefront registers the customer-facing API.
func RegisterStorefront(r *router.Router, deps Deps) {
	r.Get("/health", deps.Site.Health)
	r.Handle("GET", "/metrics", deps.Metrics)
	r.Post("/api/lang", deps.Site.SetLang)

	// Catalog
	r.Get("/api/products", deps.Catalog.ListProducts)
	r.Get("/api/products/{id}", deps.Catalog.GetProduct)
	r.Get("/api/categories", deps.Catalog.ListCategories)

	// Cart
	r.Get("/api/cart", deps.Cart.Get)
	r.Delete("/api/cart", deps.Cart.Clear)
	r.Post("/api/cart/items", deps.Cart.AddItem)
	r.Patch("/api/cart/items/{id}", deps.Cart.UpdateItem)
	r.Delete("/api/cart/items/{id}", deps.Cart.RemoveItem)

	// Checkout, throttled harder than the rest of the API.
	r.Post("/api/checkout", deps.Checkout.Submit, deps.StrictLimiter)

	// Same-origin passthrough to the shop backend.
	r.Mount(proxy.Prefix, deps.Proxy)
}
