package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	shoppingapp "github.com/storefront/backend/internal/application/shopping"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// AddCartItemRequest is the add-to-cart payload
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CartHandler serves cart operations for a given user
type CartHandler struct {
	BaseHandler
	carts *shoppingapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts *shoppingapp.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		BaseHandler: NewBaseHandler(logger),
		carts:       carts,
	}
}

// RegisterRoutes registers cart routes on the admin group
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:userId/add", h.AddItem)
}

// AddItem handles POST /admin/:userId/add. Repeating the call for the
// same product grows the line's quantity instead of adding a second line.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := h.pathUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Product id and a positive quantity are required")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid product id")
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// pathUserID parses the :userId path parameter
func (h *BaseHandler) pathUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid user id")
		return uuid.Nil, false
	}
	return id, true
}
