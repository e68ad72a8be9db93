package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/application"
	"github.com/storeward/storefront-api/pkg/response"
	"github.com/storeward/storefront-api/pkg/validation"
)

type CategoryHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CatalogService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	cat, err := h.Svc.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cat, "category created")
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cats, "categories")
}

func (h *CategoryHandler) Show(c *gin.Context) {
	cat, err := h.Svc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category")
}
