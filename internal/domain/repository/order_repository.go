package repository

import (
	"context"

	"github.com/storeward/storefront-api/internal/domain/entity"
)

// OrderRepository owns the order lifecycle.
//
// CreateOrGetActive returns the user's active order, creating it if
// none exists. It must be safe under concurrent calls for the same
// user: two simultaneous calls may not both insert. Orders returned by
// CreateOrGetActive and Complete carry no line items; callers that
// need them use GetByID.
//
// GetByID materializes the order together with its line items from the
// join and returns domainerr.ErrNotFound both for a missing order and
// for an order without any line items (the inner join cannot tell the
// two apart).
type OrderRepository interface {
	CreateOrGetActive(ctx context.Context, userID string) (*entity.Order, error)
	Complete(ctx context.Context, orderID int64) (*entity.Order, error)
	AddLineItem(ctx context.Context, orderID, productID int64, quantity int) (int64, error)
	GetByID(ctx context.Context, orderID int64) (*entity.Order, error)
}
