package service

import (
	"context"
	"log/slog"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/repository"
	"github.com/Ibrakam/PartyLand/internal/telemetry"
)

// CartService implements domain.CartService over a repository.Store. Every
// mutation reads the stored cart, applies the change in memory and writes
// the whole cart back, so a crash between operations can never leave a
// half-applied mutation behind.
type CartService struct {
	store   repository.Store
	logger  *slog.Logger
	metrics *telemetry.BusinessMetrics
}

var _ domain.CartService = (*CartService)(nil)

func NewCartService(store repository.Store, logger *slog.Logger) *CartService {
	return &CartService{store: store, logger: logger}
}

// WithMetrics attaches business metric counters.
func (s *CartService) WithMetrics(m *telemetry.BusinessMetrics) *CartService {
	s.metrics = m
	return s
}

// Summary returns the current cart with freshly derived totals. A token
// without a stored cart yields an empty summary, not an error.
func (s *CartService) Summary(ctx context.Context, token string) (*domain.CartSummary, error) {
	const op = "cart.summary"

	items, err := s.store.GetItems(ctx, token)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load cart")
	}
	return summarize(token, items), nil
}

// AddItem merges quantity into the line with the same product id, or appends
// a new line at the end. The add path rejects non-positive quantities; the
// remove-at-zero rule belongs to UpdateQuantity only.
func (s *CartService) AddItem(ctx context.Context, token string, item domain.NewItem, quantity int) (*domain.CartSummary, error) {
	const op = "cart.add"

	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	items, err := s.store.GetItems(ctx, token)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load cart")
	}

	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  quantity,
		})
	}

	if err := s.store.SaveItems(ctx, token, items); err != nil {
		return nil, domain.Internal(err, op, "failed to save cart")
	}

	if s.metrics != nil {
		s.metrics.CartItemsAdded.Inc()
	}

	s.logger.DebugContext(ctx, "cart item added",
		slog.Int64("product_id", item.ProductID),
		slog.Int("quantity", quantity),
		slog.Bool("merged", merged))

	return summarize(token, items), nil
}

// UpdateQuantity sets the absolute quantity for a line. Zero or below
// removes the line. Updating an absent product id is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, token string, productID int64, quantity int) (*domain.CartSummary, error) {
	const op = "cart.update"

	items, err := s.store.GetItems(ctx, token)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load cart")
	}

	changed := false
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		changed = true
		break
	}

	if changed {
		if err := s.store.SaveItems(ctx, token, items); err != nil {
			return nil, domain.Internal(err, op, "failed to save cart")
		}
		if quantity <= 0 && s.metrics != nil {
			s.metrics.CartItemsRemove.Inc()
		}
	}

	return summarize(token, items), nil
}

// RemoveItem deletes a line. Removing a product id that is not in the cart
// succeeds silently.
func (s *CartService) RemoveItem(ctx context.Context, token string, productID int64) (*domain.CartSummary, error) {
	return s.UpdateQuantity(ctx, token, productID, 0)
}

// Clear drops the cart entirely.
func (s *CartService) Clear(ctx context.Context, token string) error {
	const op = "cart.clear"

	if err := s.store.DeleteCart(ctx, token); err != nil {
		return domain.Internal(err, op, "failed to clear cart")
	}
	if s.metrics != nil {
		s.metrics.CartCleared.Inc()
	}
	return nil
}

func summarize(token string, items []domain.LineItem) *domain.CartSummary {
	if items == nil {
		items = []domain.LineItem{}
	}
	s := &domain.CartSummary{Token: token, Items: items}
	s.Recompute()
	return s
}
