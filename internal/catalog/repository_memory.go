package catalog

import (
	"context"
	"sync"
)

// InMemoryRepository serves the menu from memory in insertion order.
// Used by tests and by local runs without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

func NewInMemoryRepository(items []Item) *InMemoryRepository {
	copied := make([]Item, len(items))
	copy(copied, items)
	return &InMemoryRepository{items: copied}
}

func (r *InMemoryRepository) ListItems(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *InMemoryRepository) GetItem(ctx context.Context, id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrItemNotFound
}

func (r *InMemoryRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Available = available
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) SetImageURL(ctx context.Context, id string, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].ImageURL = url
			return nil
		}
	}
	return ErrItemNotFound
}
