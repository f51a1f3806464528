package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ibrakam/PartyLand/internal/cookie"
	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheckout struct {
	SubmitFn func(ctx context.Context, token string, draft domain.CheckoutDraft) (*domain.CheckoutReceipt, error)
}

func (s *stubCheckout) Submit(ctx context.Context, token string, draft domain.CheckoutDraft) (*domain.CheckoutReceipt, error) {
	return s.SubmitFn(ctx, token, draft)
}

func newCheckoutHandler(checkout CheckoutSubmitService) *CheckoutHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCheckoutHandler(checkout, telegram.NewValidator("", time.Hour), logger)
}

func TestCheckoutHandler_Submit(t *testing.T) {
	var gotToken string
	var gotDraft domain.CheckoutDraft
	checkout := &stubCheckout{
		SubmitFn: func(_ context.Context, token string, draft domain.CheckoutDraft) (*domain.CheckoutReceipt, error) {
			gotToken = token
			gotDraft = draft
			return &domain.CheckoutReceipt{OrderID: 42, FormattedTotal: "75 000 сум"}, nil
		},
	}
	h := newCheckoutHandler(checkout)

	body := `{"name":"Анна","phone":"+998901234567","address":"Ташкент, ул. Навои 10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: "t1"})
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "t1", gotToken)
	assert.Equal(t, "Ташкент, ул. Навои 10", gotDraft.Address)
	assert.Zero(t, gotDraft.TelegramUserID)

	var receipt domain.CheckoutReceipt
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&receipt))
	assert.Equal(t, int64(42), receipt.OrderID)
}

func TestCheckoutHandler_SubmitWithoutCartCookie(t *testing.T) {
	h := newCheckoutHandler(&stubCheckout{
		SubmitFn: func(context.Context, string, domain.CheckoutDraft) (*domain.CheckoutReceipt, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"address":"x"}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandler_AddressRequiredIsLocalized(t *testing.T) {
	h := newCheckoutHandler(&stubCheckout{
		SubmitFn: func(context.Context, string, domain.CheckoutDraft) (*domain.CheckoutReceipt, error) {
			return nil, domain.ErrAddressRequired
		},
	})

	tests := []struct {
		lang string
		want string
	}{
		{"ru", "Пожалуйста, укажите адрес доставки."},
		{"uz", "Iltimos, yetkazib berish manzilini ko'rsating."},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/checkout?lang="+tt.lang, strings.NewReader(`{"address":""}`))
		req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: "t1"})
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorBody
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, tt.want, body.Error.Message)
	}
}

func TestCheckoutHandler_BackendErrorTextPassesThrough(t *testing.T) {
	h := newCheckoutHandler(&stubCheckout{
		SubmitFn: func(context.Context, string, domain.CheckoutDraft) (*domain.CheckoutReceipt, error) {
			return nil, domain.Errorf(domain.EUNAVAILABLE, "backend.checkout.create", "Недостаточно товара на складе")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"address":"Ташкент"}`))
	req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: "t1"})
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Недостаточно товара на складе", body.Error.Message)
}

func TestCheckoutHandler_InvalidInitDataDegradesToAnonymous(t *testing.T) {
	var gotDraft domain.CheckoutDraft
	checkout := &stubCheckout{
		SubmitFn: func(_ context.Context, _ string, draft domain.CheckoutDraft) (*domain.CheckoutReceipt, error) {
			gotDraft = draft
			return &domain.CheckoutReceipt{OrderID: 1}, nil
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewCheckoutHandler(checkout, telegram.NewValidator("123:token", time.Hour), logger)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"address":"Ташкент"}`))
	req.AddCookie(&http.Cookie{Name: cookie.CartCookieName, Value: "t1"})
	req.Header.Set(initDataHeader, "hash=deadbeef&auth_date=0&user=%7B%22id%22%3A1%7D")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Zero(t, gotDraft.TelegramUserID)
}
