package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Ibrakam/PartyLand/internal/cookie"
	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/i18n"
	"github.com/Ibrakam/PartyLand/internal/service"
)

// cartTokenTTL keeps abandoned carts around for 30 days.
const cartTokenTTL = 30 * 24 * 60 * 60

// ItemResolver turns a product id into the frozen fields a cart line needs.
type ItemResolver interface {
	ResolveNewItem(ctx context.Context, productID int64, lang string) (domain.NewItem, error)
}

// CartHandler exposes the cart over JSON. The cart is addressed purely by
// the session cookie; product ids in the URL select lines inside it.
type CartHandler struct {
	cart     domain.CartService
	resolver ItemResolver
	cookies  *cookie.Config
	logger   *slog.Logger
}

func NewCartHandler(cart domain.CartService, resolver ItemResolver, cookies *cookie.Config, logger *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, resolver: resolver, cookies: cookies, logger: logger}
}

// cartView is the cart response shape, with display strings pre-rendered in
// the customer's language.
type cartView struct {
	Items          []domain.LineItem `json:"items"`
	TotalItems     int               `json:"total_items"`
	TotalPrice     int64             `json:"total_price"`
	FormattedTotal string            `json:"formatted_total"`
	ItemsLabel     string            `json:"items_label"`
}

func newCartView(summary *domain.CartSummary, lang i18n.Lang) cartView {
	return cartView{
		Items:          summary.Items,
		TotalItems:     summary.TotalItems,
		TotalPrice:     summary.TotalPrice,
		FormattedTotal: i18n.FormatUZS(summary.TotalPrice),
		ItemsLabel:     i18n.ItemsCountLabel(lang, summary.TotalItems),
	}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := cookie.Get(r, cookie.CartCookieName)
	lang := requestLang(r)

	if token == "" {
		// No cookie means no cart; don't mint a token on a read.
		JSON(w, http.StatusOK, newCartView(&domain.CartSummary{Items: []domain.LineItem{}}, lang))
		return
	}

	summary, err := h.cart.Summary(r.Context(), token)
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	JSON(w, http.StatusOK, newCartView(summary, lang))
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AddItem handles POST /api/cart/items. The product's name, price and image
// are looked up server-side; the client only names the product.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := Decode(r, &req); err != nil {
		Error(w, r, err, h.logger)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	lang := requestLang(r)
	item, err := h.resolver.ResolveNewItem(r.Context(), req.ProductID, string(lang))
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	token := h.ensureToken(w, r)
	summary, err := h.cart.AddItem(r.Context(), token, item, req.Quantity)
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	JSON(w, http.StatusOK, newCartView(summary, lang))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PATCH /api/cart/items/{id}. Quantity zero or below
// removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	var req updateItemRequest
	if err := Decode(r, &req); err != nil {
		Error(w, r, err, h.logger)
		return
	}

	token := h.ensureToken(w, r)
	summary, err := h.cart.UpdateQuantity(r.Context(), token, productID, req.Quantity)
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	JSON(w, http.StatusOK, newCartView(summary, requestLang(r)))
}

// RemoveItem handles DELETE /api/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	token := h.ensureToken(w, r)
	summary, err := h.cart.RemoveItem(r.Context(), token, productID)
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	JSON(w, http.StatusOK, newCartView(summary, requestLang(r)))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	token := cookie.Get(r, cookie.CartCookieName)
	if token != "" {
		if err := h.cart.Clear(r.Context(), token); err != nil {
			Error(w, r, err, h.logger)
			return
		}
	}
	JSON(w, http.StatusOK, newCartView(&domain.CartSummary{Items: []domain.LineItem{}}, requestLang(r)))
}

// ensureToken returns the cart token from the cookie, minting and setting a
// new one for first-time visitors.
func (h *CartHandler) ensureToken(w http.ResponseWriter, r *http.Request) string {
	if token := cookie.Get(r, cookie.CartCookieName); token != "" {
		return token
	}
	token := service.NewCartToken()
	h.cookies.SetSession(w, cookie.CartCookieName, token, cartTokenTTL)
	return token
}

// requestLang resolves the display language: explicit query param first,
// then the language cookie, defaulting to Russian.
func requestLang(r *http.Request) i18n.Lang {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return i18n.ParseLang(lang)
	}
	return i18n.ParseLang(cookie.Get(r, cookie.LangCookieName))
}

// pathID parses a numeric path value.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid("request.path", "Invalid id")
	}
	return id, nil
}
