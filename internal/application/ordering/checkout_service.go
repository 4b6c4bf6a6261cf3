package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"go.uber.org/zap"
)

// CheckoutService turns a user's cart into a placed order
type CheckoutService struct {
	orderRepo   ordering.OrderRepository
	cartRepo    shopping.CartRepository
	addressRepo identity.AddressRepository
	logger      *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	orderRepo ordering.OrderRepository,
	cartRepo shopping.CartRepository,
	addressRepo identity.AddressRepository,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// PlaceOrder snapshots the user's cart into an order with a pending
// cash-on-delivery payment and clears the cart. Order creation and cart
// clearing happen in one transaction, so a failure leaves the cart intact.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID) (*ordering.Order, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrEmptyCart
		}
		return nil, err
	}

	address, err := s.addressRepo.FindFirstByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoAddress
		}
		return nil, err
	}

	order, err := ordering.NewOrderFromCart(cart, address.ID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.CreateFromCart(ctx, order, cart.ID); err != nil {
		s.logger.Error("failed to place order",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("total", order.TotalAmount.String()))

	return s.orderRepo.FindByID(ctx, order.ID)
}
