package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryInput carries category creation data
type CreateCategoryInput struct {
	Name string
}

// UpdateCategoryInput carries category update data
type UpdateCategoryInput struct {
	Name string
}

// CreateProductInput carries product creation data. ImageURLs become
// nested ProductImage rows.
type CreateProductInput struct {
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uuid.UUID
	ImageURLs   []string
}

// UpdateProductInput carries product update data; the slug is immutable
type UpdateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uuid.UUID
}
