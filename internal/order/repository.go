package order

import (
	"context"
	"errors"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository is the data-access contract for placed orders.
// Orders are never deleted here; retention is someone else's problem.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	ListByEmail(ctx context.Context, email string) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
