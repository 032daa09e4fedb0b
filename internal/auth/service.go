package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("メールアドレスまたはパスワードが正しくありません")

type Service struct {
	repo UserRepository
	log  *logrus.Logger
}

func NewService(repo UserRepository, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// --------------------------------------------------
// REGISTER
// --------------------------------------------------
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, errors.New("メールアドレスとパスワードは必須です")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			s.log.WithError(err).WithField("email", email).Error("failed to create user")
		}
		return nil, err
	}

	return user, nil
}

// --------------------------------------------------
// LOGIN
// --------------------------------------------------
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}
