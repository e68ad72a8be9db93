package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/application"
	"github.com/storeward/storefront-api/internal/interface/middleware"
	"github.com/storeward/storefront-api/pkg/response"
	"github.com/storeward/storefront-api/pkg/validation"
)

// OrderHandler exposes the order lifecycle. Every route runs behind
// the auth middleware; on top of that each handler checks that the
// token's user owns the order it touches.
type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type createOrderRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type addLineItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if c.GetString(middleware.CtxUserIDKey) != req.UserID {
		response.Error(c, http.StatusUnauthorized, "token does not match user", nil)
		return
	}

	o, err := h.Svc.CreateOrGetActive(c.Request.Context(), req.UserID)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, o, "active order")
}

func (h *OrderHandler) Show(c *gin.Context) {
	orderID, err := application.ParseID(c.Param("id"))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}

	o, err := h.Svc.Get(c.Request.Context(), orderID)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	if c.GetString(middleware.CtxUserIDKey) != o.UserID {
		response.Error(c, http.StatusUnauthorized, "token does not match order owner", nil)
		return
	}
	response.Success(c, http.StatusOK, o, "order")
}

// Complete marks the order completed. Ownership is checked against the
// materialized order first, so completing another user's order fails
// before any write.
func (h *OrderHandler) Complete(c *gin.Context) {
	orderID, err := application.ParseID(c.Param("id"))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}

	existing, err := h.Svc.Get(c.Request.Context(), orderID)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	if c.GetString(middleware.CtxUserIDKey) != existing.UserID {
		response.Error(c, http.StatusUnauthorized, "token does not match order owner", nil)
		return
	}

	o, err := h.Svc.Complete(c.Request.Context(), orderID)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, o, "order completed")
}

func (h *OrderHandler) AddLineItem(c *gin.Context) {
	orderID, err := application.ParseID(c.Param("id"))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}

	var req addLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	productID, err := application.ParseID(req.ProductID)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}

	// The active order has no line items yet, so ownership is checked
	// against the bare order via create-or-resume semantics: resolving
	// the caller's active order must yield this order.
	active, err := h.Svc.CreateOrGetActive(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	if active.ID != orderID {
		response.Error(c, http.StatusUnauthorized, "order is not the caller's active order", nil)
		return
	}

	itemID, err := h.Svc.AddLineItem(c.Request.Context(), orderID, productID, req.Quantity)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": itemID}, "line item added")
}
