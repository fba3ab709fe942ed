package order

import (
	"context"
	"testing"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/cart"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"

	"go.uber.org/zap"
)

// fakeCarts stands in for the session manager.
type fakeCarts struct {
	lines   map[string][]cart.Line
	cleared []string
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{lines: make(map[string][]cart.Line)}
}

func (f *fakeCarts) CartLines(userID string) []cart.Line {
	copied := make([]cart.Line, len(f.lines[userID]))
	copy(copied, f.lines[userID])
	return copied
}

func (f *fakeCarts) ClearCart(userID string) {
	delete(f.lines, userID)
	f.cleared = append(f.cleared, userID)
}

func testLines() []cart.Line {
	return []cart.Line{
		{Item: catalog.Item{ID: "b1", Name: "Masala Dosa", Price: 35, PrepTimeMinutes: 8}, Quantity: 2},
		{Item: catalog.Item{ID: "d1", Name: "Masala Chai", Price: 10, PrepTimeMinutes: 3}, Quantity: 1},
	}
}

func newTestService(carts CartSource) (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	return NewService(repo, carts, zap.NewNop().Sugar()), repo
}

func TestCheckout_SnapshotsAndClearsCart(t *testing.T) {
	carts := newFakeCarts()
	carts.lines["u1"] = testLines()
	service, _ := newTestService(carts)

	o, err := service.Checkout(context.Background(), "u1", "ravi@campus.edu", "Ravi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Status != StatusReceived {
		t.Errorf("expected received, got %s", o.Status)
	}
	if o.Total != 80 {
		t.Errorf("expected total 80, got %d", o.Total)
	}
	// max prep 8 + ceil(2/2)*2
	if o.EstimatedMinutes != 10 {
		t.Errorf("expected estimate 10, got %d", o.EstimatedMinutes)
	}
	if len(o.Items) != 2 || o.Items[0].ItemID != "b1" || o.Items[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", o.Items)
	}
	if len(carts.cleared) != 1 || carts.cleared[0] != "u1" {
		t.Error("expected the cart to be cleared after checkout")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	service, _ := newTestService(newFakeCarts())

	if _, err := service.Checkout(context.Background(), "u1", "ravi@campus.edu", "Ravi"); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_LaterCartEditsDoNotTouchOrder(t *testing.T) {
	carts := newFakeCarts()
	carts.lines["u1"] = testLines()
	service, repo := newTestService(carts)

	o, err := service.Checkout(context.Background(), "u1", "ravi@campus.edu", "Ravi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// refill and mangle the cart after the order is placed
	carts.lines["u1"] = []cart.Line{
		{Item: catalog.Item{ID: "s1", Name: "Samosa", Price: 15}, Quantity: 9},
	}

	stored, err := repo.FindByID(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored.Items) != 2 || stored.Items[0].ItemID != "b1" {
		t.Fatalf("order snapshot changed: %+v", stored.Items)
	}
	if stored.Total != 80 {
		t.Fatalf("order total changed: %d", stored.Total)
	}
}

func TestAdvance_FourStepsThenFailure(t *testing.T) {
	carts := newFakeCarts()
	carts.lines["u1"] = testLines()
	service, _ := newTestService(carts)

	o, _ := service.Checkout(context.Background(), "u1", "ravi@campus.edu", "Ravi")

	want := []Status{StatusPreparing, StatusReady, StatusCompleted}
	for i, expected := range want {
		advanced, err := service.Advance(context.Background(), o.ID)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if advanced.Status != expected {
			t.Fatalf("step %d: got %s, want %s", i, advanced.Status, expected)
		}
	}

	if _, err := service.Advance(context.Background(), o.ID); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAdvance_UnknownOrder(t *testing.T) {
	service, _ := newTestService(newFakeCarts())

	if _, err := service.Advance(context.Background(), "missing"); err != ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestStats(t *testing.T) {
	carts := newFakeCarts()
	service, _ := newTestService(carts)

	place := func(user string) *Order {
		carts.lines[user] = testLines()
		o, err := service.Checkout(context.Background(), user, user+"@campus.edu", user)
		if err != nil {
			t.Fatalf("checkout failed: %v", err)
		}
		return o
	}

	place("a")
	b := place("b")
	c := place("c")

	// b -> preparing (still pending), c -> completed
	service.Advance(context.Background(), b.ID)
	for i := 0; i < 3; i++ {
		service.Advance(context.Background(), c.ID)
	}

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalOrders != 3 {
		t.Errorf("total: got %d, want 3", stats.TotalOrders)
	}
	if stats.PendingOrders != 2 {
		t.Errorf("pending: got %d, want 2", stats.PendingOrders)
	}
	if stats.CompletedOrders != 1 {
		t.Errorf("completed: got %d, want 1", stats.CompletedOrders)
	}
	if stats.TotalRevenue != 240 {
		t.Errorf("revenue: got %d, want 240", stats.TotalRevenue)
	}
}
