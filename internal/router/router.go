// Package router wraps http.ServeMux with middleware chaining.
package router

import (
	"net/http"
	"slices"
	"strings"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Router registers method-qualified patterns on a ServeMux and applies a
// middleware chain to every route.
type Router struct {
	mux   *http.ServeMux
	chain []Middleware
}

// New creates a Router with optional global middleware.
func New(middleware ...Middleware) *Router {
	return &Router{
		mux:   http.NewServeMux(),
		chain: middleware,
	}
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Get registers a GET route.
func (r *Router) Get(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodGet, pattern, handler, middleware...)
}

// Post registers a POST route.
func (r *Router) Post(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodPost, pattern, handler, middleware...)
}

// Patch registers a PATCH route.
func (r *Router) Patch(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodPatch, pattern, handler, middleware...)
}

// Delete registers a DELETE route.
func (r *Router) Delete(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodDelete, pattern, handler, middleware...)
}

// Handle registers a route with an explicit method.
func (r *Router) Handle(method, pattern string, handler http.Handler, middleware ...Middleware) {
	r.mux.Handle(method+" "+pattern, r.wrap(handler, middleware))
}

// Mount registers a handler for an entire path subtree, any method. Used
// for the backend proxy, which does its own routing below the prefix.
func (r *Router) Mount(prefix string, handler http.Handler, middleware ...Middleware) {
	cleanPrefix := strings.TrimSuffix(prefix, "/")
	r.mux.Handle(cleanPrefix+"/", r.wrap(handler, middleware))
}

// Group creates a sub-router sharing the mux but carrying extra middleware.
func (r *Router) Group(middleware ...Middleware) *Router {
	return &Router{
		mux:   r.mux,
		chain: append(slices.Clone(r.chain), middleware...),
	}
}

// wrap applies global plus route middleware, outermost first.
func (r *Router) wrap(handler http.Handler, middleware []Middleware) http.Handler {
	combined := append(slices.Clone(r.chain), middleware...)
	slices.Reverse(combined)

	result := handler
	for _, m := range combined {
		result = m(result)
	}
	return result
}
