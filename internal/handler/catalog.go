package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/i18n"
	"github.com/Ibrakam/PartyLand/internal/service"
)

// CatalogHandler exposes read-only product and category listings. The data
// comes straight from the shop backend; this layer only adds localized
// display fields.
type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// productView decorates a backend product with pre-rendered display fields.
type productView struct {
	domain.Product
	DisplayTitle   string `json:"display_title"`
	FormattedPrice string `json:"formatted_price"`
	CategoryLabel  string `json:"category_label,omitempty"`
}

func newProductView(p domain.Product, lang i18n.Lang) productView {
	return productView{
		Product:        p,
		DisplayTitle:   p.LocalizedTitle(string(lang)),
		FormattedPrice: i18n.FormatUZSString(p.Price),
		CategoryLabel:  p.CategoryName(string(lang)),
	}
}

// ListProducts handles GET /api/products with an optional ?category=slug
// filter.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	products, err := h.catalog.ListProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p, lang))
	}
	JSON(w, http.StatusOK, views)
}

// GetProduct handles GET /api/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}
	JSON(w, http.StatusOK, newProductView(*p, requestLang(r)))
}

// categoryView decorates a category with its localized name.
type categoryView struct {
	domain.Category
	DisplayName string `json:"display_name"`
}

// ListCategories handles GET /api/categories. The full set is returned in
// one response regardless of how the backend paginates.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		Error(w, r, err, h.logger)
		return
	}

	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, categoryView{Category: c, DisplayName: c.LocalizedName(string(lang))})
	}
	JSON(w, http.StatusOK, views)
}
