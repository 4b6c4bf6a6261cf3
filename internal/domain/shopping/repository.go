package shopping

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository provides access to stored carts.
//
// AddItem is a single atomic operation: it creates the user's cart when
// absent and inserts or increments the (cart, product) line in one
// transaction, so concurrent adds for the same user never produce
// duplicate carts or duplicate lines.
type CartRepository interface {
	// FindByUser returns the user's cart with items and their products
	// preloaded, or shared.ErrNotFound when no cart exists.
	FindByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*Cart, error)
}
