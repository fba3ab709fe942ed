package session

import (
	"sync"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/cart"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
)

// Session holds the per-student state that lives between login and
// logout: the cart, the active allergen exclusions and the last budget
// the student picked. Every mutation goes through the session's lock,
// so two racing add-to-cart requests cannot lose an increment.
type Session struct {
	mu sync.Mutex

	userID string
	email  string
	name   string

	cart       cart.Cart
	exclusions catalog.ExclusionSet
	budget     int
}

func (s *Session) UserID() string { return s.userID }
func (s *Session) Email() string  { return s.email }
func (s *Session) Name() string   { return s.name }

func (s *Session) AddItem(item catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item)
}

func (s *Session) SetQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(itemID, quantity)
}

func (s *Session) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(itemID)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// CartLines returns a snapshot; the caller's copy survives later mutation.
func (s *Session) CartLines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Session) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// SetExclusions replaces the allergen restrictions wholesale.
func (s *Session) SetExclusions(exclusions catalog.ExclusionSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exclusions = exclusions
}

func (s *Session) Exclusions() catalog.ExclusionSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(catalog.ExclusionSet, len(s.exclusions))
	for tag := range s.exclusions {
		copied[tag] = true
	}
	return copied
}

func (s *Session) SetBudget(budget int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = budget
}

func (s *Session) Budget() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}
