package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/domain/entity"
	"github.com/storeward/storefront-api/internal/domain/repository"
	"github.com/storeward/storefront-api/pkg/helpers"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles registration and authentication. Digests are
// bcrypt over password+pepper; the pepper never reaches the database.
type UserService struct {
	Users      repository.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	Pepper     string
	BcryptCost int
}

func NewUserService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pepper string, bcryptCost int) *UserService {
	return &UserService{Users: users, JWT: jwt, Logger: logger, Pepper: pepper, BcryptCost: bcryptCost}
}

type RegisterInput struct {
	ID        string
	FirstName string
	LastName  string
	Password  string
}

// Register creates the user with a peppered digest. A taken id comes
// back as a PersistenceError wrapping the unique violation.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	digest, err := helpers.HashPassword(in.Password, s.Pepper, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		ID:             in.ID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		PasswordDigest: digest,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.Logger.WithField("user_id", u.ID).Info("user registered")
	return u, nil
}

// Authenticate checks the credentials and issues a token. Unknown user
// and wrong password are deliberately the same error.
func (s *UserService) Authenticate(ctx context.Context, id, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.PasswordDigest, password, s.Pepper) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.Users.GetByID(ctx, id)
}
