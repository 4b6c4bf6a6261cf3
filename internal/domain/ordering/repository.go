package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepository provides access to stored orders.
//
// CreateFromCart persists the order, its items and its payment, and
// deletes the originating cart's items, all in one transaction: either
// the order becomes durable with the cart emptied, or nothing changes.
type OrderRepository interface {
	CreateFromCart(ctx context.Context, order *Order, cartID uuid.UUID) error
	// FindByID returns the order with items (and their products) and
	// payment preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindRecent returns the most recent orders with user, items and
	// item products preloaded.
	FindRecent(ctx context.Context, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	SumTotalAmount(ctx context.Context) (decimal.Decimal, error)
}
