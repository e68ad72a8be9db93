package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/internal/domain/entity"
)

type stubCategoryRepo struct {
	create  func(ctx context.Context, name string) (*entity.Category, error)
	list    func(ctx context.Context) ([]entity.Category, error)
	getByID func(ctx context.Context, id int64) (*entity.Category, error)
}

func (s *stubCategoryRepo) Create(ctx context.Context, name string) (*entity.Category, error) {
	return s.create(ctx, name)
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	return s.list(ctx)
}

func (s *stubCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return s.getByID(ctx, id)
}

type stubProductRepo struct {
	create  func(ctx context.Context, p *entity.Product) error
	list    func(ctx context.Context) ([]entity.Product, error)
	getByID func(ctx context.Context, id int64) (*entity.Product, error)
}

func (s *stubProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return s.create(ctx, p)
}

func (s *stubProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	return s.list(ctx)
}

func (s *stubProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return s.getByID(ctx, id)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "1.5", "42x"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, domainerr.ErrInvalidArgument, "raw=%q", raw)
	}
}

func TestGetCategoryMalformedID(t *testing.T) {
	svc := NewCatalogService(&stubCategoryRepo{}, &stubProductRepo{}, testLogger())

	_, err := svc.GetCategory(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, domainerr.ErrInvalidArgument)
}

func TestCreateProduct(t *testing.T) {
	products := &stubProductRepo{
		create: func(_ context.Context, p *entity.Product) error {
			assert.Equal(t, "Chess Set", p.Name)
			assert.True(t, p.Price.Equal(decimal.RequireFromString("24.50")))
			assert.Equal(t, int64(2), p.CategoryID)
			p.ID = 11
			return nil
		},
	}
	svc := NewCatalogService(&stubCategoryRepo{}, products, testLogger())

	p, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:       "Chess Set",
		Price:      "24.50",
		CategoryID: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID)
}

func TestCreateProductMalformedPrice(t *testing.T) {
	called := false
	products := &stubProductRepo{
		create: func(context.Context, *entity.Product) error {
			called = true
			return nil
		},
	}
	svc := NewCatalogService(&stubCategoryRepo{}, products, testLogger())

	for _, price := range []string{"", "abc", "12,80"} {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{
			Name: "x", Price: price, CategoryID: "1",
		})
		assert.ErrorIs(t, err, domainerr.ErrInvalidArgument, "price=%q", price)
	}
	assert.False(t, called)
}

func TestCreateProductMalformedCategoryID(t *testing.T) {
	svc := NewCatalogService(&stubCategoryRepo{}, &stubProductRepo{}, testLogger())

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name: "x", Price: "1.00", CategoryID: "two",
	})
	assert.ErrorIs(t, err, domainerr.ErrInvalidArgument)
}
