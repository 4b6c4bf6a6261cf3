package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"go.uber.org/zap"
)

// CartService handles cart operations for a user
type CartService struct {
	cartRepo    shopping.CartRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(cartRepo shopping.CartRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddItem adds quantity of a product to the user's cart, creating the cart
// on first use. Concurrent adds for the same product accumulate instead of
// clobbering each other.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*shopping.Cart, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be greater than zero")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	cart, err := s.cartRepo.AddItem(ctx, userID, productID, quantity)
	if err != nil {
		s.logger.Error("failed to add cart item",
			zap.String("user_id", userID.String()),
			zap.String("product_id", productID.String()),
			zap.Error(err))
		return nil, err
	}
	return cart, nil
}

// Get returns the user's cart with items and products populated
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*shopping.Cart, error) {
	return s.cartRepo.FindByUser(ctx, userID)
}
