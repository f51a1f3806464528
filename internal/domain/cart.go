package domain

import "context"

// Cart domain errors.
var (
	ErrCartNotFound    = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrItemNotFound    = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
)

// LineItem is one product-id-keyed row in a cart. Name and image are
// resolved at the moment the item is added (locale-dependent); price is the
// unit price in whole UZS at that moment. Quantity is always >= 1; a line
// reaching zero is removed, never stored.
type LineItem struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is price * quantity for this line.
func (li LineItem) Subtotal() int64 {
	return li.Price * int64(li.Quantity)
}

// CartSummary is a cart with its derived totals. Items keep insertion
// order, which is also display order. Totals are recomputed from the items
// on every read and never stored.
type CartSummary struct {
	Token      string     `json:"-"`
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
}

// Recompute derives TotalItems and TotalPrice from Items.
func (s *CartSummary) Recompute() {
	s.TotalItems = 0
	s.TotalPrice = 0
	for _, li := range s.Items {
		s.TotalItems += li.Quantity
		s.TotalPrice += li.Subtotal()
	}
}

// Snapshot deep-copies the items so a receipt view stays stable while the
// live cart is mutated or cleared.
func (s *CartSummary) Snapshot() []LineItem {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return items
}

// NewItem carries the product fields captured when a line item is created.
type NewItem struct {
	ProductID int64
	Name      string
	Price     int64
	Image     string
}

// CartService is the single mutation path for cart state. Every operation
// persists before returning, so the stored cart never trails the in-memory
// view by more than the operation in progress.
type CartService interface {
	// Summary returns the cart for a session token, empty if none exists.
	Summary(ctx context.Context, token string) (*CartSummary, error)

	// AddItem merges quantity into an existing line with the same product id
	// or appends a new line. Quantity <= 0 is rejected with ErrInvalidQuantity.
	AddItem(ctx context.Context, token string, item NewItem, quantity int) (*CartSummary, error)

	// UpdateQuantity sets an absolute quantity. Zero or negative removes the
	// line entirely.
	UpdateQuantity(ctx context.Context, token string, productID int64, quantity int) (*CartSummary, error)

	// RemoveItem deletes a line; removing an absent product id is a no-op.
	RemoveItem(ctx context.Context, token string, productID int64) (*CartSummary, error)

	// Clear empties the cart. Called exactly once, after a checkout
	// submission succeeds.
	Clear(ctx context.Context, token string) error
}
