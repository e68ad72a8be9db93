package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/application"
	"github.com/storeward/storefront-api/pkg/response"
)

type ReportHandler struct {
	Svc    *application.ReportService
	Logger *logrus.Logger
}

func NewReportHandler(svc *application.ReportService, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{Svc: svc, Logger: logger}
}

func (h *ReportHandler) CurrentOrderByUser(c *gin.Context) {
	o, err := h.Svc.CurrentOrderByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, o, "current order")
}

func (h *ReportHandler) CompletedOrdersByUser(c *gin.Context) {
	orders, err := h.Svc.CompletedOrdersByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, orders, "completed orders")
}

func (h *ReportHandler) ProductsByCategory(c *gin.Context) {
	products, err := h.Svc.ProductsByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, products, "products in category")
}
