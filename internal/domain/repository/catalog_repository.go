package repository

import (
	"context"

	"github.com/storeward/storefront-api/internal/domain/entity"
)

// CategoryRepository defines the database operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
}

// ProductRepository defines the database operations for products.
// Create fills in the generated id on success.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
