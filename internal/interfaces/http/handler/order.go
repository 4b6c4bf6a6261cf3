package handler

import (
	"github.com/gin-gonic/gin"
	orderingapp "github.com/storefront/backend/internal/application/ordering"
	"go.uber.org/zap"
)

// OrderHandler serves order placement
type OrderHandler struct {
	BaseHandler
	checkout *orderingapp.CheckoutService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkout *orderingapp.CheckoutService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		BaseHandler: NewBaseHandler(logger),
		checkout:    checkout,
	}
}

// RegisterRoutes registers order routes on the admin group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:userId/place", h.PlaceOrder)
}

// PlaceOrder handles POST /admin/:userId/place. The order is created
// from the user's cart, and the cart is emptied in the same transaction.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := h.pathUserID(c)
	if !ok {
		return
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}
