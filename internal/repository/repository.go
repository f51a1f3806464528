// Package repository persists cart state keyed by an opaque session token.
//
// The service layer owns all cart semantics; a Store only loads and saves
// the ordered item list. SaveItems replaces the whole cart in one atomic
// write, which is what keeps the stored representation in lockstep with the
// in-memory state after every mutation.
package repository

import (
	"context"

	"github.com/Ibrakam/PartyLand/internal/domain"
)

type Store interface {
	// GetItems returns the cart's items in insertion order. A token with no
	// stored cart yields an empty slice, not an error.
	GetItems(ctx context.Context, token string) ([]domain.LineItem, error)

	// SaveItems atomically replaces the cart's contents. Saving an empty
	// slice is equivalent to DeleteCart.
	SaveItems(ctx context.Context, token string, items []domain.LineItem) error

	// DeleteCart removes the cart entirely. Deleting an absent cart is a
	// no-op.
	DeleteCart(ctx context.Context, token string) error
}
