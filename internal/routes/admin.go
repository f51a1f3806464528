package routes

import (
	"github.com/Ibrakam/PartyLand/internal/router"
)

// RegisterAdmin registers the admin console API. Everything except login
// requires a live admin session.
func RegisterAdmin(r *router.Router, deps Deps) {
	r.Post("/api/admin/login", deps.Admin.Login, deps.StrictLimiter)
	r.Post("/api/admin/logout", deps.Admin.Logout)

	gated := r.Group(deps.requireAdmin())
	gated.Get("/api/admin/payments", deps.Admin.ListPayments)
	gated.Get("/api/admin/payments/{id}", deps.Admin.GetPayment)
	gated.Post("/api/admin/payments/{id}/approve", deps.Admin.ApprovePayment)
	gated.Post("/api/admin/payments/{id}/reject", deps.Admin.RejectPayment)
}
