package repository

import (
	"context"

	"github.com/storeward/storefront-api/internal/domain/entity"
)

// ReportRepository provides the read-only aggregation queries. All
// order-returning methods fold join rows into nested orders and return
// domainerr.ErrNotFound when the query yields no rows.
type ReportRepository interface {
	CurrentOrderByUser(ctx context.Context, userID string) (*entity.Order, error)
	// CompletedOrdersByUser returns the user's completed orders sorted
	// by order id ascending.
	CompletedOrdersByUser(ctx context.Context, userID string) ([]entity.Order, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]entity.Product, error)
	// TopProducts ranks products by total quantity sold, descending,
	// ties broken by product id ascending.
	TopProducts(ctx context.Context, limit int) ([]entity.Product, error)
}
