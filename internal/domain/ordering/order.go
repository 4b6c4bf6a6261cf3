package ordering

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
)

// PaymentStatus is the lifecycle state of a payment record
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
)

// PaymentProviderCashOnDelivery tags orders settled on delivery; no
// gateway is involved.
const PaymentProviderCashOnDelivery = "cash_on_delivery"

// Order is an immutable snapshot of a completed checkout intent. Line
// prices are frozen at creation time, so later catalog price changes
// never alter historical order value.
type Order struct {
	shared.BaseEntity
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"totalAmount"`
	Status            OrderStatus     `gorm:"type:varchar(20);not null" json:"status"`
	ShippingAddressID uuid.UUID       `gorm:"type:uuid;not null" json:"shippingAddressId"`
	BillingAddressID  uuid.UUID       `gorm:"type:uuid;not null" json:"billingAddressId"`
	Items             []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payment           *Payment        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
	User              *identity.User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line of an order with the product price snapshotted at
// order time.
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID        `gorm:"type:uuid;not null" json:"productId"`
	Quantity  int              `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"price"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Payment tracks settlement status and amount for an order without an
// actual payment processor integration.
type Payment struct {
	shared.BaseEntity
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"orderId"`
	Provider string          `gorm:"type:varchar(50);not null" json:"provider"`
	Status   PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewOrderFromCart builds a pending order from a loaded cart, snapshotting
// each line's current product price and attaching a pending payment for
// the computed total. The same address serves shipping and billing.
// The cart's items must have their products loaded.
func NewOrderFromCart(cart *shopping.Cart, addressID uuid.UUID) (*Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}
	if addressID == uuid.Nil {
		return nil, shared.ErrNoAddress
	}

	order := &Order{
		BaseEntity:        shared.NewBaseEntity(),
		UserID:            cart.UserID,
		Status:            OrderStatusPending,
		ShippingAddressID: addressID,
		BillingAddressID:  addressID,
	}

	total := decimal.Zero
	for _, item := range cart.Items {
		if item.Product == nil {
			return nil, shared.NewDomainError("INVALID_STATE", "Cart item is missing its product")
		}
		order.Items = append(order.Items, OrderItem{
			BaseEntity: shared.NewBaseEntity(),
			OrderID:    order.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Price:      item.Product.Price,
		})
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order.TotalAmount = total
	order.Payment = &Payment{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    order.ID,
		Provider:   PaymentProviderCashOnDelivery,
		Status:     PaymentStatusPending,
		Amount:     total,
	}
	return order, nil
}
