package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/pkg/helpers"
)

type memUserRepo struct {
	users map[string]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; ok {
		return domainerr.Persistence("create user", assertConstraintErr{})
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) List(context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerr.ErrNotFound
	}
	return &u, nil
}

type assertConstraintErr struct{}

func (assertConstraintErr) Error() string { return "duplicate key" }

func newUserService(repo *memUserRepo) *UserService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(repo, jwt, testLogger(), "pepper", bcrypt.MinCost)
}

func TestRegisterStoresPepperedDigest(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		ID: "walt", FirstName: "Walter", LastName: "White", Password: "saymyname",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.PasswordDigest)
	assert.NotContains(t, u.PasswordDigest, "saymyname")

	// The digest only verifies with the pepper appended.
	assert.True(t, helpers.CheckPassword(u.PasswordDigest, "saymyname", "pepper"))
	assert.False(t, helpers.CheckPassword(u.PasswordDigest, "saymyname", ""))
}

func TestAuthenticateIssuesToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		ID: "walt", FirstName: "Walter", LastName: "White", Password: "saymyname",
	})
	require.NoError(t, err)

	u, token, exp, err := svc.Authenticate(context.Background(), "walt", "saymyname")
	require.NoError(t, err)
	assert.Equal(t, "walt", u.ID)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "walt", claims.UserID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		ID: "walt", FirstName: "Walter", LastName: "White", Password: "saymyname",
	})
	require.NoError(t, err)

	_, _, _, err = svc.Authenticate(context.Background(), "walt", "heisenberg")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown user and wrong password are the same error so responses do
// not leak which ids exist.
func TestAuthenticateUnknownUser(t *testing.T) {
	svc := newUserService(newMemUserRepo())

	_, _, _, err := svc.Authenticate(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateID(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)

	in := RegisterInput{ID: "walt", FirstName: "Walter", LastName: "White", Password: "saymyname"}
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.True(t, domainerr.IsPersistence(err))
}
