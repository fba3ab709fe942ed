package order

import (
	"errors"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/cart"
)

// ErrInvalidTransition is returned when advancing an order that is
// already completed.
var ErrInvalidTransition = errors.New("invalid transition: order is already completed")

// Next returns the following status. The progression is strictly
// linear, no skipping, no going back. The kitchen (or a timer acting
// for it) decides when to call this; here we only enforce validity.
func (s Status) Next() (Status, error) {
	switch s {
	case StatusReceived:
		return StatusPreparing, nil
	case StatusPreparing:
		return StatusReady, nil
	case StatusReady:
		return StatusCompleted, nil
	default:
		return "", ErrInvalidTransition
	}
}

// EstimateMinutes is the checkout prep-time heuristic: the slowest
// line's prep time plus a batching penalty of two minutes per two
// lines. It deliberately ignores quantities and kitchen load.
func EstimateMinutes(lines []cart.Line) int {
	longest := 0
	for _, line := range lines {
		if line.Item.PrepTimeMinutes > longest {
			longest = line.Item.PrepTimeMinutes
		}
	}
	return longest + (len(lines)+1)/2*2
}
