package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/cart"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cannot checkout an empty cart")

// CartSource is the slice of the session the checkout needs.
// Implemented by the session manager.
type CartSource interface {
	CartLines(userID string) []cart.Line
	ClearCart(userID string)
}

type Service struct {
	repo   Repository
	carts  CartSource
	logger *zap.SugaredLogger
}

func NewService(repo Repository, carts CartSource, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		carts:  carts,
		logger: logger,
	}
}

// Checkout snapshots the caller's cart into a new received order and
// clears the cart. The snapshot is a copy: later cart edits cannot
// reach an order that has already been placed.
func (s *Service) Checkout(
	ctx context.Context,
	userID string,
	studentEmail string,
	studentName string,
) (*Order, error) {

	lines := s.carts.CartLines(userID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]Item, 0, len(lines))
	total := 0
	for _, line := range lines {
		items = append(items, Item{
			ItemID:   line.Item.ID,
			Name:     line.Item.Name,
			Price:    line.Item.Price,
			Quantity: line.Quantity,
		})
		total += line.Item.Price * line.Quantity
	}

	o := &Order{
		ID:               uuid.New().String(),
		StudentEmail:     studentEmail,
		StudentName:      studentName,
		Items:            items,
		Total:            total,
		Status:           StatusReceived,
		CreatedAt:        time.Now().UTC(),
		EstimatedMinutes: EstimateMinutes(lines),
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.carts.ClearCart(userID)

	s.logger.Infow("order placed",
		"order_id", o.ID,
		"student", studentEmail,
		"total", o.Total,
		"estimated_minutes", o.EstimatedMinutes,
	)

	return o, nil
}

// Advance moves the order exactly one step along the lifecycle.
// Advancing a completed order surfaces ErrInvalidTransition; the
// caller must see it, never a silent no-op.
func (s *Service) Advance(ctx context.Context, orderID string) (*Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next, err := o.Status.Next()
	if err != nil {
		s.logger.Errorw("rejected status transition",
			"order_id", orderID,
			"status", o.Status,
		)
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	s.logger.Infow("order advanced",
		"order_id", orderID,
		"from", o.Status,
		"to", next,
	)

	o.Status = next
	return o, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

func (s *Service) ListForStudent(ctx context.Context, email string) ([]*Order, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *Service) ListAll(ctx context.Context) ([]*Order, error) {
	return s.repo.ListAll(ctx)
}

// Stats aggregates the admin dashboard counters over every order.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, o := range orders {
		stats.TotalOrders++
		stats.TotalRevenue += o.Total
		switch o.Status {
		case StatusReceived, StatusPreparing:
			stats.PendingOrders++
		case StatusCompleted:
			stats.CompletedOrders++
		}
	}
	return stats, nil
}
