package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/internal/domain/entity"
)

func joinRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"order_id", "user_id", "is_completed", "product_id", "quantity"})
}

func productRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "price", "category_id"})
}

func TestCurrentOrderByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`WHERE NOT o.is_completed AND o.user_id`).
		WithArgs("walt").
		WillReturnRows(joinRows().
			AddRow(int64(7), "walt", false, int64(1), 2).
			AddRow(int64(7), "walt", false, int64(3), 1))

	o, err := repo.CurrentOrderByUser(context.Background(), "walt")
	require.NoError(t, err)
	assert.Equal(t, int64(7), o.ID)
	assert.False(t, o.IsCompleted)
	assert.Len(t, o.LineItems, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrentOrderByUserNone(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`WHERE NOT o.is_completed AND o.user_id`).
		WithArgs("walt").
		WillReturnRows(joinRows())

	_, err := repo.CurrentOrderByUser(context.Background(), "walt")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletedOrdersByUserGroupsPerOrder(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`WHERE o.is_completed AND o.user_id`).
		WithArgs("walt").
		WillReturnRows(joinRows().
			AddRow(int64(5), "walt", true, int64(1), 2).
			AddRow(int64(5), "walt", true, int64(2), 4).
			AddRow(int64(6), "walt", true, int64(1), 1))

	orders, err := repo.CompletedOrdersByUser(context.Background(), "walt")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(5), orders[0].ID)
	assert.Equal(t, []entity.LineItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 4}}, orders[0].LineItems)
	assert.Equal(t, int64(6), orders[1].ID)
	assert.Equal(t, []entity.LineItem{{ProductID: 1, Quantity: 1}}, orders[1].LineItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletedOrdersByUserNone(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`WHERE o.is_completed AND o.user_id`).
		WithArgs("walt").
		WillReturnRows(joinRows())

	_, err := repo.CompletedOrdersByUser(context.Background(), "walt")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductsByCategory(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`WHERE category_id`).
		WithArgs(int64(2)).
		WillReturnRows(productRows().
			AddRow(int64(1), "Chess Set", "24.50", int64(2)).
			AddRow(int64(4), "Deck of Cards", "3.99", int64(2)))

	products, err := repo.ProductsByCategory(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Chess Set", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("24.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductsByCategoryEmptyOrMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`WHERE category_id`).
		WithArgs(int64(404)).
		WillReturnRows(productRows())

	_, err := repo.ProductsByCategory(context.Background(), 404)
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopProductsPassesLimit(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`ORDER BY SUM`).
		WithArgs(5).
		WillReturnRows(productRows().
			AddRow(int64(3), "Coffee Beans 1kg", "12.80", int64(3)).
			AddRow(int64(1), "Chess Set", "24.50", int64(2)))

	products, err := repo.TopProducts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(3), products[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Fewer products than the limit is not an error; the report is just
// shorter. Zero sold products means an empty report.
func TestTopProductsEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReportRepository(mock)

	mock.ExpectQuery(`ORDER BY SUM`).
		WithArgs(5).
		WillReturnRows(productRows())

	products, err := repo.TopProducts(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}
