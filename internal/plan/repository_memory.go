package plan

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository is the test double for Repository.
type InMemoryRepository struct {
	mu     sync.Mutex
	plans  []*Plan
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Insert(ctx context.Context, p *Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()

	stored := *p
	r.plans = append(r.plans, &stored)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.plans {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) List(ctx context.Context, skip, limit int) ([]*Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first, like the Postgres ORDER BY created_at DESC.
	var out []*Plan
	for i := len(r.plans) - 1; i >= 0; i-- {
		out = append(out, r.plans[i])
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
