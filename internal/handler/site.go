package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ibrakam/PartyLand/internal/cookie"
	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/i18n"
)

// SiteHandler covers the small endpoints that belong to no feature area.
type SiteHandler struct {
	cookies *cookie.Config
	logger  *slog.Logger
}

func NewSiteHandler(cookies *cookie.Config, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{cookies: cookies, logger: logger}
}

// Health handles GET /health.
func (h *SiteHandler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type langRequest struct {
	Lang string `json:"lang"`
}

// SetLang handles POST /api/lang and persists the customer's language
// choice in a cookie.
func (h *SiteHandler) SetLang(w http.ResponseWriter, r *http.Request) {
	var req langRequest
	if err := Decode(r, &req); err != nil {
		Error(w, r, err, h.logger)
		return
	}
	if req.Lang != string(i18n.RU) && req.Lang != string(i18n.UZ) {
		Error(w, r, domain.Invalid("lang.set", "Unsupported language"), h.logger)
		return
	}

	h.cookies.SetLang(w, req.Lang)
	JSON(w, http.StatusOK, map[string]string{"lang": req.Lang})
}
