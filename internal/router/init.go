package router

import (
	"github.com/storeward/storefront-api/internal/application"
	"github.com/storeward/storefront-api/internal/container"
	pginfra "github.com/storeward/storefront-api/internal/infrastructure/postgres"
	handlers "github.com/storeward/storefront-api/internal/interface/http"
	"github.com/storeward/storefront-api/internal/router/modules"
)

// InitModules builds every feature module from the container
// singletons and registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	categoryRepo := pginfra.NewCategoryRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)
	orderRepo := pginfra.NewOrderRepository(pool)
	reportRepo := pginfra.NewReportRepository(pool)
	userRepo := pginfra.NewUserRepository(pool)

	catalogSvc := application.NewCatalogService(categoryRepo, productRepo, logger)
	reportSvc := application.NewReportService(reportRepo, container.GetRedis(), logger, cfg.TopProductsCacheTTL)
	userSvc := application.NewUserService(userRepo, container.GetJWT(), logger, cfg.PasswordPepper, cfg.BcryptCost)

	// The publisher is optional; a nil interface keeps the order
	// service from publishing at all.
	var publisher application.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		publisher = pub
	}
	orderSvc := application.NewOrderService(orderRepo, publisher, logger)

	categoryHandler := handlers.NewCategoryHandler(catalogSvc, logger)
	productHandler := handlers.NewProductHandler(catalogSvc, reportSvc, logger)
	orderHandler := handlers.NewOrderHandler(orderSvc, logger)
	reportHandler := handlers.NewReportHandler(reportSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)

	r.Add(modules.NewCatalogModule(categoryHandler, productHandler))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewOrderModule(orderHandler, container.GetJWT()))
	r.Add(modules.NewReportModule(reportHandler, productHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
