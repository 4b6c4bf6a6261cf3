package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements shopping.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUser returns the user's cart with items and their products preloaded
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*shopping.Cart, error) {
	var cart shopping.Cart
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Items.Product.Images").
		First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem upserts a cart line for the user. The cart row and the item row
// are both written with ON CONFLICT clauses, so two concurrent adds for
// the same product end up accumulated rather than one overwriting the
// other, and two first-time adds never race on cart creation.
func (r *GormCartRepository) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*shopping.Cart, error) {
	item, err := shopping.NewCartItem(uuid.Nil, productID, quantity)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart := shopping.NewCart(userID)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(cart).Error; err != nil {
			return err
		}

		// On conflict the generated ID was discarded; read the persisted
		// row back into a zero-value struct, since GORM folds a non-zero
		// primary key on the dest into the WHERE clause.
		var persisted shopping.Cart
		if err := tx.First(&persisted, "user_id = ?", userID).Error; err != nil {
			return err
		}

		item.CartID = persisted.ID
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
			}),
		}).Create(item).Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindByUser(ctx, userID)
}

var _ shopping.CartRepository = (*GormCartRepository)(nil)
