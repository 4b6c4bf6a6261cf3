// Package report holds read-only aggregate views for the admin dashboard.
package report

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/ordering"
)

// StoreStats is a point-in-time rollup of store-wide counters. The
// individual figures are fetched independently, so exact cross-metric
// consistency is not guaranteed.
type StoreStats struct {
	Products int64           `json:"products"`
	Users    int64           `json:"users"`
	Orders   int64           `json:"orders"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// Dashboard couples the counters with the latest orders for display.
type Dashboard struct {
	Stats        StoreStats       `json:"stats"`
	RecentOrders []ordering.Order `json:"recentOrders"`
}
