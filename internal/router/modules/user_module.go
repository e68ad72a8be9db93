package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storeward/storefront-api/internal/container"
	handlers "github.com/storeward/storefront-api/internal/interface/http"
	"github.com/storeward/storefront-api/internal/interface/middleware"
	"github.com/storeward/storefront-api/pkg/helpers"
)

// UserModule wires user routes.
// Public: POST /api/users, POST /api/users/authenticate (rate limited)
// Protected: GET /api/users, GET /api/users/:id

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	authLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/users/authenticate", authLimiter, m.Handler.Authenticate)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/users", m.Handler.List)
		auth.GET("/users/:id", m.Handler.Show)
	}
}
