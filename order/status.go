// Package order guards the order status lifecycle. The happy path is
// pending -> confirmed -> shipped -> delivered; cancelled is reachable from
// any non-terminal state. Delivered and cancelled are terminal.
package order

import (
	"errors"
	"fmt"

	"github.com/battariah/storefront-api/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:   {models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered: {},
	models.OrderStatusCancelled: {},
}

// ValidStatus reports whether s is one of the five known statuses.
func ValidStatus(s models.OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates from -> to and returns ErrInvalidTransition otherwise.
func Transition(from, to models.OrderStatus) error {
	if !ValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: cannot change status from %s to %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// Terminal reports whether no further transition is possible.
func Terminal(s models.OrderStatus) bool {
	return len(transitions[s]) == 0 && ValidStatus(s)
}
