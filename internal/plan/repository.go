package plan

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("plan not found")

// Repository is the data-access contract. Service depends only on this.
type Repository interface {
	// Insert stores the plan and fills in ID and CreatedAt.
	Insert(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, id int64) (*Plan, error)
	// List returns plans newest first.
	List(ctx context.Context, skip, limit int) ([]*Plan, error)
}
