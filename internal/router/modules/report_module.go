package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/storeward/storefront-api/internal/interface/http"
)

// ReportModule wires the read-only reporting routes. They are public,
// like the storefront this grew from.

type ReportModule struct {
	Reports  *handlers.ReportHandler
	Products *handlers.ProductHandler
}

func NewReportModule(reports *handlers.ReportHandler, products *handlers.ProductHandler) *ReportModule {
	return &ReportModule{Reports: reports, Products: products}
}

func (m *ReportModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users/:id/current_order", m.Reports.CurrentOrderByUser)
	rg.GET("/users/:id/completed_orders", m.Reports.CompletedOrdersByUser)
	rg.GET("/categories/:id/products", m.Reports.ProductsByCategory)
	rg.GET("/reports/top_products", m.Products.Top)
}
