package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
)

// EventPublisher publishes domain events as JSON messages.
// *helpers.RabbitPublisher satisfies it.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// OrderCompletedEvent is emitted after an order transitions to
// completed.
type OrderCompletedEvent struct {
	OrderID     int64     `json:"order_id"`
	UserID      string    `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// OrderService drives the order lifecycle: create-or-resume the active
// order, add line items, complete. Holds no state across calls; the
// single-active-order invariant lives in the store.
type OrderService struct {
	Orders    repository.OrderRepository
	Publisher EventPublisher
	Logger    *logrus.Logger
}

func NewOrderService(orders repository.OrderRepository, publisher EventPublisher, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Publisher: publisher, Logger: logger}
}

// CreateOrGetActive returns the user's active order, creating one if
// needed. Calling it repeatedly without completing returns the same
// order.
func (s *OrderService) CreateOrGetActive(ctx context.Context, userID string) (*entity.Order, error) {
	o, err := s.Orders.CreateOrGetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"order_id": o.ID, "user_id": userID}).Debug("active order resolved")
	return o, nil
}

// Complete marks the order completed and publishes the completion
// event. Publishing is best effort: a broker failure is logged, never
// surfaced to the caller.
func (s *OrderService) Complete(ctx context.Context, orderID int64) (*entity.Order, error) {
	o, err := s.Orders.Complete(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		evt := OrderCompletedEvent{OrderID: o.ID, UserID: o.UserID, CompletedAt: time.Now().UTC()}
		if err := s.Publisher.PublishJSON(ctx, evt); err != nil {
			s.Logger.WithError(err).WithField("order_id", o.ID).Warn("order completed event not published")
		}
	}

	s.Logger.WithFields(logrus.Fields{"order_id": o.ID, "user_id": o.UserID}).Info("order completed")
	return o, nil
}

// AddLineItem validates the quantity and appends a line item to the
// order. It does not deduplicate against existing (order, product)
// pairs and does not re-check that the order is still active; callers
// gate on ownership and state.
func (s *OrderService) AddLineItem(ctx context.Context, orderID, productID int64, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1, got %d", domainerr.ErrInvalidArgument, quantity)
	}
	return s.Orders.AddLineItem(ctx, orderID, productID, quantity)
}

// Get returns the order with its line items.
func (s *OrderService) Get(ctx context.Context, orderID int64) (*entity.Order, error) {
	return s.Orders.GetByID(ctx, orderID)
}
