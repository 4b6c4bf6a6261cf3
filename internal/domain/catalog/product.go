package catalog

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Product is a sellable catalog item. Slugs are unique store-wide.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductImage is an externally hosted image attached to a product
type ProductImage struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProduct creates a product with nested images from the given URLs
func NewProduct(name, slug, description string, price decimal.Decimal, stock int, categoryID uuid.UUID, imageURLs []string) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product slug must be lowercase letters, digits and hyphens")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product stock cannot be negative")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product category is required")
	}

	product := &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Slug:        slug,
		Description: description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
	}
	for _, url := range imageURLs {
		product.Images = append(product.Images, ProductImage{
			BaseEntity: shared.NewBaseEntity(),
			ProductID:  product.ID,
			URL:        url,
		})
	}
	return product, nil
}

// Update applies mutable fields; the slug is immutable after creation
func (p *Product) Update(name, description string, price decimal.Decimal, stock int, categoryID uuid.UUID) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Product stock cannot be negative")
	}
	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.Price = price
	p.Stock = stock
	if categoryID != uuid.Nil {
		p.CategoryID = categoryID
	}
	return nil
}
