package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
)

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts the product and fills in its generated id. The price
// travels as its exact decimal text; a missing category surfaces as a
// PersistenceError wrapping the foreign-key violation.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO products (name, price, category_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.Name, p.Price.String(), p.CategoryID)
	if err := row.Scan(&p.ID); err != nil {
		return wrapQueryErr("create product", err)
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price::text, category_id
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, wrapQueryErr("list products", err)
	}
	defer rows.Close()

	out, err := scanProducts(rows)
	if err != nil {
		return nil, wrapQueryErr("list products", err)
	}
	return out, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p := &entity.Product{}
	var price string

	row := r.db.QueryRow(ctx, `
		SELECT id, name, price::text, category_id
		FROM products
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Name, &price, &p.CategoryID); err != nil {
		return nil, wrapQueryErr("get product", err)
	}

	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, wrapQueryErr("get product", err)
	}
	return p, nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
