package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/application"
	"github.com/storeward/storefront-api/pkg/response"
	"github.com/storeward/storefront-api/pkg/validation"
)

type ProductHandler struct {
	Svc     *application.CatalogService
	Reports *application.ReportService
	Logger  *logrus.Logger
}

func NewProductHandler(svc *application.CatalogService, reports *application.ReportService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Reports: reports, Logger: logger}
}

// Ids and price arrive as strings, matching the BIGINT/NUMERIC columns
// they reference; the service validates both.
type createProductRequest struct {
	Name       string `json:"name" binding:"required,max=250"`
	Price      string `json:"price" binding:"required"`
	CategoryID string `json:"category_id" binding:"required"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.CreateProduct(c.Request.Context(), application.CreateProductInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "product created")
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.ListProducts(c.Request.Context())
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, products, "products")
}

func (h *ProductHandler) Show(c *gin.Context) {
	p, err := h.Svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "product")
}

// Top serves the most-sold products ranking.
func (h *ProductHandler) Top(c *gin.Context) {
	products, err := h.Reports.TopProducts(c.Request.Context())
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, products, "top products")
}
