package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	categoryID := uuid.New()
	price := decimal.NewFromFloat(699.99)

	t.Run("creates product with nested images", func(t *testing.T) {
		product, err := NewProduct("Smartphone", "smartphone", "Latest model", price, 10, categoryID,
			[]string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"})
		require.NoError(t, err)

		assert.Equal(t, "Smartphone", product.Name)
		assert.Equal(t, "smartphone", product.Slug)
		assert.True(t, price.Equal(product.Price))
		assert.Equal(t, 10, product.Stock)
		require.Len(t, product.Images, 2)
		assert.Equal(t, product.ID, product.Images[0].ProductID)
	})

	t.Run("rejects bad slug", func(t *testing.T) {
		_, err := NewProduct("Smartphone", "Smart Phone!", "", price, 10, categoryID, nil)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Smartphone", "smartphone", "", decimal.NewFromInt(-1), 10, categoryID, nil)
		assert.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct("Smartphone", "smartphone", "", price, -1, categoryID, nil)
		assert.Error(t, err)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		_, err := NewProduct("Smartphone", "smartphone", "", price, 10, uuid.Nil, nil)
		assert.Error(t, err)
	})
}

func TestProduct_Update(t *testing.T) {
	categoryID := uuid.New()
	product, err := NewProduct("Smartphone", "smartphone", "old", decimal.NewFromInt(100), 5, categoryID, nil)
	require.NoError(t, err)

	t.Run("updates mutable fields", func(t *testing.T) {
		newCategory := uuid.New()
		err := product.Update("Smartphone Pro", "new", decimal.NewFromInt(150), 7, newCategory)
		require.NoError(t, err)

		assert.Equal(t, "Smartphone Pro", product.Name)
		assert.Equal(t, "new", product.Description)
		assert.Equal(t, 7, product.Stock)
		assert.Equal(t, newCategory, product.CategoryID)
		// slug never changes
		assert.Equal(t, "smartphone", product.Slug)
	})

	t.Run("keeps category when nil given", func(t *testing.T) {
		current := product.CategoryID
		err := product.Update("Smartphone Pro", "new", decimal.NewFromInt(150), 7, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, current, product.CategoryID)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := product.Update("", "new", decimal.NewFromInt(150), 7, categoryID)
		assert.Error(t, err)
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		category, err := NewCategory(" Electronics ")
		require.NoError(t, err)
		assert.Equal(t, "Electronics", category.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory("   ")
		assert.Error(t, err)
	})
}
