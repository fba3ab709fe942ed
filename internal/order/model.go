package order

import "time"

// Status is the closed four-state order progression.
type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the four known states.
func (s Status) Valid() bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusReady, StatusCompleted:
		return true
	}
	return false
}

// Item is a line frozen into an order at checkout.
type Item struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order is a placed order. Items are a snapshot of the cart at
// checkout; mutating the cart afterwards does not touch them.
type Order struct {
	ID               string    `json:"id"`
	StudentEmail     string    `json:"student_email"`
	StudentName      string    `json:"student_name"`
	Items            []Item    `json:"items"`
	Total            int       `json:"total"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	EstimatedMinutes int       `json:"estimated_minutes"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	CompletedOrders int `json:"completed_orders"`
	TotalRevenue    int `json:"total_revenue"`
}
