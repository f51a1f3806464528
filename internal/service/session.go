// Package service holds the storefront business logic: cart state, checkout
// submission and the admin session lifecycle. Handlers stay thin and call
// into here.
package service

import (
	"github.com/google/uuid"
)

// NewCartToken mints an opaque session token for a fresh cart. Tokens are
// random, never derived from user identity, and live in a cookie.
func NewCartToken() string {
	return uuid.NewString()
}
