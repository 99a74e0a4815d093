package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appordering "github.com/storefront/backend/internal/application/ordering"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// OrderHandler serves the order commit endpoint
type OrderHandler struct {
	BaseHandler
	checkout *appordering.CheckoutService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkout *appordering.CheckoutService) *OrderHandler {
	return &OrderHandler{checkout: checkout}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Commit)
}

// Commit handles POST /orders
func (h *OrderHandler) Commit(c *gin.Context) {
	var req appordering.CommitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	result, err := h.checkout.CommitOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
