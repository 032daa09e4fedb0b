package auth

import (
	"context"
	"errors"
)

var (
	ErrEmailTaken   = errors.New("このメールアドレスは既に登録されています")
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	// Create stores the user and fills CreatedAt. A duplicate email
	// is reported as ErrEmailTaken.
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}
