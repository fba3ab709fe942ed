package order

import (
	"context"
	"sync"
)

// InMemoryRepository keeps orders newest-first, the way the tracking
// screen lists them. Used by tests and database-free runs.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *o
	copied.Items = append([]Item(nil), o.Items...)
	r.orders = append([]*Order{&copied}, r.orders...)
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			copied := *o
			copied.Items = append([]Item(nil), o.Items...)
			return &copied, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *InMemoryRepository) ListByEmail(ctx context.Context, email string) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Order
	for _, o := range r.orders {
		if o.StudentEmail == email {
			copied := *o
			copied.Items = append([]Item(nil), o.Items...)
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Order, 0, len(r.orders))
	for _, o := range r.orders {
		copied := *o
		copied.Items = append([]Item(nil), o.Items...)
		out = append(out, &copied)
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}
