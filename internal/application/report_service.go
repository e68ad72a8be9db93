package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
	"github.com/storeward/storefront-api/pkg/helpers"
)

const topProductsLimit = 5

const topProductsCacheKey = "report:top_products"

// ReportService serves the read-only reporting queries. The top
// products ranking is cached in Redis for a short TTL; cache failures
// degrade to the SQL query.
type ReportService struct {
	Reports  repository.ReportRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	CacheTTL time.Duration
}

func NewReportService(reports repository.ReportRepository, rdb *redis.Client, logger *logrus.Logger, cacheTTL time.Duration) *ReportService {
	return &ReportService{Reports: reports, Redis: rdb, Logger: logger, CacheTTL: cacheTTL}
}

func (s *ReportService) CurrentOrderByUser(ctx context.Context, userID string) (*entity.Order, error) {
	return s.Reports.CurrentOrderByUser(ctx, userID)
}

func (s *ReportService) CompletedOrdersByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	return s.Reports.CompletedOrdersByUser(ctx, userID)
}

func (s *ReportService) ProductsByCategory(ctx context.Context, rawCategoryID string) ([]entity.Product, error) {
	id, err := ParseID(rawCategoryID)
	if err != nil {
		return nil, err
	}
	return s.Reports.ProductsByCategory(ctx, id)
}

// TopProducts returns the five products with the highest total
// quantity sold.
func (s *ReportService) TopProducts(ctx context.Context) ([]entity.Product, error) {
	if s.Redis != nil {
		var cached []entity.Product
		hit, err := helpers.RedisGetJSON(ctx, s.Redis, topProductsCacheKey, &cached)
		if err != nil {
			s.Logger.WithError(err).Warn("top products cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	products, err := s.Reports.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, topProductsCacheKey, products, s.CacheTTL); err != nil {
			s.Logger.WithError(err).Warn("top products cache write failed")
		}
	}
	return products, nil
}
