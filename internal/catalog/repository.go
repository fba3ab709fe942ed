package catalog

import (
	"context"
	"errors"
)

var ErrItemNotFound = errors.New("menu item not found")

// Repository is the data-access contract for the menu.
// Iteration order of ListItems is stable; fuzzy matching and combo
// ranking both depend on it.
type Repository interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, id string) (Item, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	SetImageURL(ctx context.Context, id string, url string) error
}
