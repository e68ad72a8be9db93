package postgres

import (
	"context"

	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user under its caller-chosen id. A duplicate id
// surfaces as a PersistenceError wrapping the unique violation.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, password_digest)
		VALUES ($1, $2, $3, $4)
	`, u.ID, u.FirstName, u.LastName, u.PasswordDigest)
	if err != nil {
		return persistence("create user", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, first_name, last_name, password_digest
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, persistence("list users", err)
	}
	defer rows.Close()

	var out []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.PasswordDigest); err != nil {
			return nil, persistence("list users", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("list users", err)
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}

	row := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, password_digest
		FROM users
		WHERE id = $1
	`, id)
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.PasswordDigest); err != nil {
		return nil, wrapQueryErr("get user", err)
	}

	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
