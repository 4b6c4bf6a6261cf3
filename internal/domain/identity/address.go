package identity

import (
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Address is a postal address owned by a user. A user may register
// several; order placement uses the first one on file.
type Address struct {
	shared.BaseEntity
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	FullName   string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Line1      string    `gorm:"type:varchar(255);not null" json:"line1"`
	Line2      string    `gorm:"type:varchar(255)" json:"line2,omitempty"`
	City       string    `gorm:"type:varchar(100);not null" json:"city"`
	State      string    `gorm:"type:varchar(100)" json:"state,omitempty"`
	PostalCode string    `gorm:"type:varchar(20);not null" json:"postalCode"`
	Country    string    `gorm:"type:varchar(100);not null" json:"country"`
	Phone      string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}
