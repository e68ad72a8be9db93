package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storeward/storefront-api/internal/container"
	handlers "github.com/storeward/storefront-api/internal/interface/http"
	"github.com/storeward/storefront-api/internal/interface/middleware"
	"github.com/storeward/storefront-api/pkg/helpers"
)

// OrderModule wires the order lifecycle routes. Everything requires a
// bearer token; ownership checks live in the handlers.

type OrderModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrderModule {
	return &OrderModule{Handler: h, JWT: jwt}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/orders", m.Handler.Create)
		auth.GET("/orders/:id", m.Handler.Show)
		auth.PUT("/orders/:id/complete", m.Handler.Complete)
		auth.POST("/orders/:id/items", m.Handler.AddLineItem)
	}
}
