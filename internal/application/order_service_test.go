package application

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/internal/domain/entity"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubOrderRepo struct {
	createOrGetActive func(ctx context.Context, userID string) (*entity.Order, error)
	complete          func(ctx context.Context, orderID int64) (*entity.Order, error)
	addLineItem       func(ctx context.Context, orderID, productID int64, quantity int) (int64, error)
	getByID           func(ctx context.Context, orderID int64) (*entity.Order, error)
}

func (s *stubOrderRepo) CreateOrGetActive(ctx context.Context, userID string) (*entity.Order, error) {
	return s.createOrGetActive(ctx, userID)
}

func (s *stubOrderRepo) Complete(ctx context.Context, orderID int64) (*entity.Order, error) {
	return s.complete(ctx, orderID)
}

func (s *stubOrderRepo) AddLineItem(ctx context.Context, orderID, productID int64, quantity int) (int64, error) {
	return s.addLineItem(ctx, orderID, productID, quantity)
}

func (s *stubOrderRepo) GetByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	return s.getByID(ctx, orderID)
}

type capturingPublisher struct {
	published []any
	err       error
}

func (p *capturingPublisher) PublishJSON(_ context.Context, body any) error {
	p.published = append(p.published, body)
	return p.err
}

func TestAddLineItemRejectsNonPositiveQuantity(t *testing.T) {
	called := false
	repo := &stubOrderRepo{
		addLineItem: func(context.Context, int64, int64, int) (int64, error) {
			called = true
			return 0, nil
		},
	}
	svc := NewOrderService(repo, nil, testLogger())

	for _, quantity := range []int{0, -3} {
		_, err := svc.AddLineItem(context.Background(), 7, 1, quantity)
		assert.ErrorIs(t, err, domainerr.ErrInvalidArgument)
	}
	assert.False(t, called, "store must not see invalid quantities")
}

func TestAddLineItemAcceptsQuantityOne(t *testing.T) {
	repo := &stubOrderRepo{
		addLineItem: func(_ context.Context, orderID, productID int64, quantity int) (int64, error) {
			assert.Equal(t, int64(7), orderID)
			assert.Equal(t, int64(3), productID)
			assert.Equal(t, 1, quantity)
			return 41, nil
		},
	}
	svc := NewOrderService(repo, nil, testLogger())

	id, err := svc.AddLineItem(context.Background(), 7, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
}

func TestCompletePublishesEvent(t *testing.T) {
	repo := &stubOrderRepo{
		complete: func(_ context.Context, orderID int64) (*entity.Order, error) {
			return &entity.Order{ID: orderID, UserID: "walt", IsCompleted: true}, nil
		},
	}
	pub := &capturingPublisher{}
	svc := NewOrderService(repo, pub, testLogger())

	o, err := svc.Complete(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, o.IsCompleted)

	require.Len(t, pub.published, 1)
	evt, ok := pub.published[0].(OrderCompletedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(7), evt.OrderID)
	assert.Equal(t, "walt", evt.UserID)
	assert.False(t, evt.CompletedAt.IsZero())
}

func TestCompleteToleratesPublishFailure(t *testing.T) {
	repo := &stubOrderRepo{
		complete: func(_ context.Context, orderID int64) (*entity.Order, error) {
			return &entity.Order{ID: orderID, UserID: "walt", IsCompleted: true}, nil
		},
	}
	pub := &capturingPublisher{err: errors.New("broker down")}
	svc := NewOrderService(repo, pub, testLogger())

	o, err := svc.Complete(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, o.IsCompleted)
}

func TestCompletePropagatesNotFound(t *testing.T) {
	repo := &stubOrderRepo{
		complete: func(context.Context, int64) (*entity.Order, error) {
			return nil, domainerr.ErrNotFound
		},
	}
	pub := &capturingPublisher{}
	svc := NewOrderService(repo, pub, testLogger())

	_, err := svc.Complete(context.Background(), 404)
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
	assert.Empty(t, pub.published, "no event for a failed completion")
}
