package service

import (
	"context"
	"log/slog"

	"github.com/Ibrakam/PartyLand/internal/domain"
)

// CatalogBackend is the slice of the shop backend the catalog needs.
type CatalogBackend interface {
	ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CatalogService reads the product catalog from the shop backend. It owns
// the translation from catalog products to cart line inputs so handlers
// never trust client-supplied names or prices.
type CatalogService struct {
	backend CatalogBackend
	logger  *slog.Logger
}

func NewCatalogService(backend CatalogBackend, logger *slog.Logger) *CatalogService {
	return &CatalogService{backend: backend, logger: logger}
}

func (s *CatalogService) ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	return s.backend.ListProducts(ctx, categorySlug)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.backend.GetProduct(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.backend.ListCategories(ctx)
}

// ResolveNewItem fetches a product and freezes its display fields into a
// cart line input. The name is localized at add time; a later language
// switch does not rewrite lines already in the cart.
func (s *CatalogService) ResolveNewItem(ctx context.Context, productID int64, lang string) (domain.NewItem, error) {
	p, err := s.backend.GetProduct(ctx, productID)
	if err != nil {
		return domain.NewItem{}, err
	}
	return domain.NewItem{
		ProductID: p.ID,
		Name:      p.LocalizedTitle(lang),
		Price:     p.PriceUZS(),
		Image:     p.Image,
	}, nil
}
