package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/storeward/storefront-api/internal/interface/http"
)

// CatalogModule wires category and product routes.
// Public: the whole catalog is readable and, as in the storefront this
// grew from, writable without a token.

type CatalogModule struct {
	Categories *handlers.CategoryHandler
	Products   *handlers.ProductHandler
}

func NewCatalogModule(categories *handlers.CategoryHandler, products *handlers.ProductHandler) *CatalogModule {
	return &CatalogModule{Categories: categories, Products: products}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.POST("/categories", m.Categories.Create)
	rg.GET("/categories", m.Categories.List)
	rg.GET("/categories/:id", m.Categories.Show)

	rg.POST("/products", m.Products.Create)
	rg.GET("/products", m.Products.List)
	rg.GET("/products/:id", m.Products.Show)
}
