package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, slug string, price float64) *catalog.Product {
	t.Helper()

	category, err := catalog.NewCategory("Category " + slug)
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)

	product, err := catalog.NewProduct("Product "+slug, slug, "",
		decimal.NewFromFloat(price), 10, category.ID, nil)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestGormCartRepository_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("creates cart lazily on first add", func(t *testing.T) {
		db := setupStoreTestDB(t)
		repo := NewGormCartRepository(db)
		product := seedProduct(t, db, "smartphone", 699.99)
		userID := uuid.New()

		cart, err := repo.AddItem(ctx, userID, product.ID, 2)
		require.NoError(t, err)

		assert.Equal(t, userID, cart.UserID)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, product.ID, cart.Items[0].ProductID)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		require.NotNil(t, cart.Items[0].Product)
		assert.Equal(t, "699.99", cart.Items[0].Product.Price.StringFixed(2))
	})

	t.Run("re-adding a product accumulates quantity in one row", func(t *testing.T) {
		db := setupStoreTestDB(t)
		repo := NewGormCartRepository(db)
		product := seedProduct(t, db, "smartphone", 699.99)
		userID := uuid.New()

		_, err := repo.AddItem(ctx, userID, product.ID, 2)
		require.NoError(t, err)
		cart, err := repo.AddItem(ctx, userID, product.ID, 3)
		require.NoError(t, err)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)

		var rowCount int64
		require.NoError(t, db.Model(&shopping.CartItem{}).Count(&rowCount).Error)
		assert.Equal(t, int64(1), rowCount)
	})

	t.Run("distinct products get their own rows", func(t *testing.T) {
		db := setupStoreTestDB(t)
		repo := NewGormCartRepository(db)
		phone := seedProduct(t, db, "smartphone", 699.99)
		laptop := seedProduct(t, db, "laptop", 1299.00)
		userID := uuid.New()

		_, err := repo.AddItem(ctx, userID, phone.ID, 1)
		require.NoError(t, err)
		cart, err := repo.AddItem(ctx, userID, laptop.ID, 1)
		require.NoError(t, err)

		assert.Len(t, cart.Items, 2)
	})

	t.Run("reuses the existing cart row across adds", func(t *testing.T) {
		db := setupStoreTestDB(t)
		repo := NewGormCartRepository(db)
		product := seedProduct(t, db, "smartphone", 699.99)
		userID := uuid.New()

		first, err := repo.AddItem(ctx, userID, product.ID, 1)
		require.NoError(t, err)
		second, err := repo.AddItem(ctx, userID, product.ID, 1)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)

		var cartCount int64
		require.NoError(t, db.Model(&shopping.Cart{}).Count(&cartCount).Error)
		assert.Equal(t, int64(1), cartCount)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		db := setupStoreTestDB(t)
		repo := NewGormCartRepository(db)
		product := seedProduct(t, db, "smartphone", 699.99)

		_, err := repo.AddItem(ctx, uuid.New(), product.ID, 0)
		assert.Error(t, err)
	})
}

func TestGormCartRepository_FindByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found when the user has no cart", func(t *testing.T) {
		db := setupStoreTestDB(t)
		repo := NewGormCartRepository(db)

		_, err := repo.FindByUser(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("computes cart total from loaded products", func(t *testing.T) {
		db := setupStoreTestDB(t)
		repo := NewGormCartRepository(db)
		product := seedProduct(t, db, "smartphone", 699.99)
		userID := uuid.New()

		_, err := repo.AddItem(ctx, userID, product.ID, 2)
		require.NoError(t, err)

		cart, err := repo.FindByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "1399.98", cart.Total().StringFixed(2))
	})
}
