package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
)

// CatalogService provides CRUD over categories and products. No
// cross-entity logic beyond the product→category reference, which the
// store enforces.
type CatalogService struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Logger     *logrus.Logger
}

func NewCatalogService(categories repository.CategoryRepository, products repository.ProductRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Categories: categories, Products: products, Logger: logger}
}

// ParseID converts a surrogate-key path parameter into its numeric
// form. A malformed id is the caller's mistake, not a missing row.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed id %q", domainerr.ErrInvalidArgument, raw)
	}
	return id, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	c, err := s.Categories.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"category_id": c.ID, "name": c.Name}).Debug("category created")
	return c, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, rawID string) (*entity.Category, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.Categories.GetByID(ctx, id)
}

type CreateProductInput struct {
	Name       string
	Price      string
	CategoryID string
}

// CreateProduct validates the price as an exact decimal and the
// category reference as a well-formed id before handing off to the
// store. A dangling category reference comes back from the store as a
// PersistenceError.
func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed price %q", domainerr.ErrInvalidArgument, in.Price)
	}
	categoryID, err := ParseID(in.CategoryID)
	if err != nil {
		return nil, err
	}

	p := &entity.Product{Name: in.Name, Price: price, CategoryID: categoryID}
	if err := s.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"product_id": p.ID, "name": p.Name}).Debug("product created")
	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.Products.List(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, rawID string) (*entity.Product, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.Products.GetByID(ctx, id)
}
