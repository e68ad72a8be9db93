package postgres

import (
	"context"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
)

// ReportRepository serves the read-only aggregation queries. It shares
// the fold primitive with the order repository, generalized to many
// orders per result.
type ReportRepository struct {
	db DB
}

func NewReportRepository(db DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CurrentOrderByUser(ctx context.Context, userID string) (*entity.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oli.order_id, o.user_id, o.is_completed, oli.product_id, oli.quantity
		FROM orders AS o
		JOIN order_line_items AS oli ON oli.order_id = o.id
		JOIN products AS p ON p.id = oli.product_id
		WHERE NOT o.is_completed AND o.user_id = $1
		ORDER BY oli.id
	`, userID)
	if err != nil {
		return nil, persistence("current order by user", err)
	}
	defer rows.Close()

	orders, err := foldOrderRows(rows)
	if err != nil {
		return nil, persistence("current order by user", err)
	}
	// No active order, or an active order with no line items yet.
	if len(orders) == 0 {
		return nil, domainerr.ErrNotFound
	}
	return &orders[0], nil
}

// CompletedOrdersByUser returns the user's completed orders, each with
// its line items, ordered by order id ascending. ORDER BY fixes the
// output order; the fold itself groups by id and would survive
// non-contiguous rows.
func (r *ReportRepository) CompletedOrdersByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oli.order_id, o.user_id, o.is_completed, oli.product_id, oli.quantity
		FROM orders AS o
		JOIN order_line_items AS oli ON oli.order_id = o.id
		JOIN products AS p ON p.id = oli.product_id
		WHERE o.is_completed AND o.user_id = $1
		ORDER BY oli.order_id, oli.id
	`, userID)
	if err != nil {
		return nil, persistence("completed orders by user", err)
	}
	defer rows.Close()

	orders, err := foldOrderRows(rows)
	if err != nil {
		return nil, persistence("completed orders by user", err)
	}
	if len(orders) == 0 {
		return nil, domainerr.ErrNotFound
	}
	return orders, nil
}

func (r *ReportRepository) ProductsByCategory(ctx context.Context, categoryID int64) ([]entity.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price::text, category_id
		FROM products
		WHERE category_id = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, persistence("products by category", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, persistence("products by category", err)
	}
	// A category without products is indistinguishable from a missing
	// category here; both come back empty.
	if len(products) == 0 {
		return nil, domainerr.ErrNotFound
	}
	return products, nil
}

// TopProducts ranks products by total quantity sold across all line
// items. Ties break by product id ascending so the ranking is
// deterministic.
func (r *ReportRepository) TopProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.price::text, p.category_id
		FROM products AS p
		JOIN order_line_items AS oli ON oli.product_id = p.id
		GROUP BY p.id, p.name, p.price, p.category_id
		ORDER BY SUM(oli.quantity) DESC, p.id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, persistence("top products", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, persistence("top products", err)
	}
	return products, nil
}

var _ repository.ReportRepository = (*ReportRepository)(nil)
