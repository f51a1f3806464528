package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Ibrakam/PartyLand/internal/cookie"
	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/service"
)

// AdminHandler exposes the admin console API: login, logout and the payment
// moderation queue. Everything except login sits behind the admin session
// middleware.
type AdminHandler struct {
	admin    *service.AdminService
	payments *service.PaymentsService
	cookies  *cookie.Config
	logger   *slog.Logger
}

func NewAdminHandler(admin *service.AdminService, payments *service.PaymentsService, cookies *cookie.Config, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, payments: payments, cookies: cookies, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := Decode(r, &req); err != nil {
		Error(w, r, err, h.logger)
		return
	}

	session, err := h.admin.Login(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	h.cookies.SetSessionWithExpiry(w, cookie.AdminCookieName, session.Token, session.ExpiresAt)
	JSON(w, http.StatusOK, map[string]string{
		"username":   session.Username,
		"expires_at": session.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Logout handles POST /api/admin/logout.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := cookie.Get(r, cookie.AdminCookieName); token != "" {
		h.admin.Logout(token)
	}
	h.cookies.ClearSession(w, cookie.AdminCookieName)
	w.WriteHeader(http.StatusNoContent)
}

// ListPayments handles GET /api/admin/payments with an optional ?status=
// filter.
func (h *AdminHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	if payments == nil {
		payments = []domain.AdminPayment{}
	}
	JSON(w, http.StatusOK, payments)
}

// GetPayment handles GET /api/admin/payments/{id}.
func (h *AdminHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	detail, err := h.payments.Detail(r.Context(), id)
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	JSON(w, http.StatusOK, detail)
}

// ApprovePayment handles POST /api/admin/payments/{id}/approve.
func (h *AdminHandler) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	payment, err := h.payments.Approve(r.Context(), id, h.reviewer(r))
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	JSON(w, http.StatusOK, payment)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// RejectPayment handles POST /api/admin/payments/{id}/reject.
func (h *AdminHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	var req rejectRequest
	if err := Decode(r, &req); err != nil {
		Error(w, r, err, h.logger)
		return
	}

	payment, err := h.payments.Reject(r.Context(), id, req.Reason, h.reviewer(r))
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	JSON(w, http.StatusOK, payment)
}

// reviewer resolves the acting admin's username for the audit log.
func (h *AdminHandler) reviewer(r *http.Request) string {
	session, err := h.admin.Validate(cookie.Get(r, cookie.AdminCookieName))
	if err != nil {
		return ""
	}
	return session.Username
}
