package persistence

import (
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shopping"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all store entities.
// Parent tables run first so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identity.User{},
		&identity.Address{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.ProductImage{},
		&shopping.Cart{},
		&shopping.CartItem{},
		&ordering.Order{},
		&ordering.OrderItem{},
		&ordering.Payment{},
	)
}
