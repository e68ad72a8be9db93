package postgres

import (
	"context"

	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
)

type CategoryRepository struct {
	db DB
}

func NewCategoryRepository(db DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*entity.Category, error) {
	c := &entity.Category{Name: name}

	row := r.db.QueryRow(ctx, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`, name)
	if err := row.Scan(&c.ID); err != nil {
		return nil, wrapQueryErr("create category", err)
	}

	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, wrapQueryErr("list categories", err)
	}
	defer rows.Close()

	var out []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, wrapQueryErr("list categories", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("list categories", err)
	}
	return out, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c := &entity.Category{}

	row := r.db.QueryRow(ctx, `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return nil, wrapQueryErr("get category", err)
	}

	return c, nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
