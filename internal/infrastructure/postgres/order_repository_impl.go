package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
)

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const selectActiveOrder = `
		SELECT id, user_id, is_completed
		FROM orders
		WHERE user_id = $1 AND NOT is_completed
	`

// CreateOrGetActive returns the user's active order, inserting one if
// none exists. The insert is guarded by the partial unique index on
// orders(user_id) WHERE NOT is_completed: when two calls race, one
// insert hits the conflict, returns no row, and the re-select picks up
// the winner. An unknown user surfaces as a PersistenceError wrapping
// the foreign-key violation.
func (r *OrderRepository) CreateOrGetActive(ctx context.Context, userID string) (*entity.Order, error) {
	o := &entity.Order{LineItems: []entity.LineItem{}}

	err := r.db.QueryRow(ctx, selectActiveOrder, userID).Scan(&o.ID, &o.UserID, &o.IsCompleted)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, persistence("find active order", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO orders (user_id, is_completed)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) WHERE NOT is_completed DO NOTHING
		RETURNING id, user_id, is_completed
	`, userID).Scan(&o.ID, &o.UserID, &o.IsCompleted)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, persistence("create order", err)
	}

	// Lost the race: a concurrent call inserted the active order
	// between our select and insert.
	if err := r.db.QueryRow(ctx, selectActiveOrder, userID).Scan(&o.ID, &o.UserID, &o.IsCompleted); err != nil {
		return nil, persistence("find active order", err)
	}
	return o, nil
}

// Complete marks the order completed. The update is a no-op match on an
// already-completed order, so re-invoking still succeeds and returns
// it. Zero matched rows means the order does not exist.
func (r *OrderRepository) Complete(ctx context.Context, orderID int64) (*entity.Order, error) {
	o := &entity.Order{LineItems: []entity.LineItem{}}

	row := r.db.QueryRow(ctx, `
		UPDATE orders
		SET is_completed = TRUE
		WHERE id = $1
		RETURNING id, user_id, is_completed
	`, orderID)
	if err := row.Scan(&o.ID, &o.UserID, &o.IsCompleted); err != nil {
		return nil, wrapQueryErr("complete order", err)
	}

	return o, nil
}

// AddLineItem inserts a new line item and returns its id. It never
// deduplicates against existing (order, product) pairs; summing
// quantities is a reporting-time concern. Unknown order or product ids
// surface as PersistenceErrors wrapping the foreign-key violation.
func (r *OrderRepository) AddLineItem(ctx context.Context, orderID, productID int64, quantity int) (int64, error) {
	var id int64

	row := r.db.QueryRow(ctx, `
		INSERT INTO order_line_items (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`, orderID, productID, quantity)
	if err := row.Scan(&id); err != nil {
		return 0, persistence("add line item", err)
	}

	return id, nil
}

// GetByID materializes the order with its line items from the join.
// The inner join yields no rows both for a missing order and for an
// order without line items, so both cases are ErrNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oli.order_id, o.user_id, o.is_completed, oli.product_id, oli.quantity
		FROM orders AS o
		JOIN order_line_items AS oli ON oli.order_id = o.id
		JOIN products AS p ON p.id = oli.product_id
		WHERE o.id = $1
		ORDER BY oli.id
	`, orderID)
	if err != nil {
		return nil, persistence("get order", err)
	}
	defer rows.Close()

	orders, err := foldOrderRows(rows)
	if err != nil {
		return nil, persistence("get order", err)
	}
	if len(orders) == 0 {
		return nil, domainerr.ErrNotFound
	}
	return &orders[0], nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
