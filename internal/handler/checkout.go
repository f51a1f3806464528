package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ibrakam/PartyLand/internal/cookie"
	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/i18n"
	"github.com/Ibrakam/PartyLand/internal/telegram"
)

// initDataHeader carries the raw Telegram mini-app init data when the
// storefront runs embedded in Telegram.
const initDataHeader = "X-Telegram-Init-Data"

// CheckoutSubmitService runs one checkout attempt for a cart token.
type CheckoutSubmitService interface {
	Submit(ctx context.Context, token string, draft domain.CheckoutDraft) (*domain.CheckoutReceipt, error)
}

// CheckoutHandler exposes checkout submission.
type CheckoutHandler struct {
	checkout CheckoutSubmitService
	telegram *telegram.Validator
	logger   *slog.Logger
}

func NewCheckoutHandler(checkout CheckoutSubmitService, tg *telegram.Validator, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, telegram: tg, logger: logger}
}

// Submit handles POST /api/checkout. A verified Telegram identity is
// attached when present; anything wrong with the init data silently
// degrades to an anonymous order.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	token := cookie.Get(r, cookie.CartCookieName)
	if token == "" {
		Error(w, r, domain.ErrCartEmpty, h.logger)
		return
	}

	var draft domain.CheckoutDraft
	if err := Decode(r, &draft); err != nil {
		Error(w, r, err, h.logger)
		return
	}

	if raw := r.Header.Get(initDataHeader); raw != "" {
		user, err := h.telegram.Validate(raw)
		if err != nil {
			h.logger.DebugContext(r.Context(), "telegram init data rejected", slog.Any("error", err))
		} else {
			draft.TelegramUserID = user.ID
		}
	}

	receipt, err := h.checkout.Submit(r.Context(), token, draft)
	if err != nil {
		// Localize our own failure messages. Error text the backend itself
		// produced (out of stock and the like) passes through untouched.
		lang := requestLang(r)
		switch {
		case errors.Is(err, domain.ErrAddressRequired):
			err = domain.Invalid("checkout.submit", i18n.T(lang, "checkout.addressRequired"))
		case domain.IsCode(err, domain.EUNAVAILABLE) && errors.Unwrap(err) != nil:
			err = domain.Errorf(domain.EUNAVAILABLE, "checkout.submit", "%s", i18n.T(lang, "checkout.submitFailed"))
		}
		Error(w, r, err, h.logger)
		return
	}

	JSON(w, http.StatusCreated, receipt)
}
