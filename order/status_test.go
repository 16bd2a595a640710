package order

import (
	"testing"

	"github.com/battariah/storefront-api/models"
	"github.com/stretchr/testify/assert"
)

func TestHappyPath(t *testing.T) {
	path := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.NoError(t, Transition(path[i], path[i+1]))
	}
}

func TestCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
	} {
		assert.True(t, CanTransition(from, models.OrderStatusCancelled), "from %s", from)
	}
}

func TestTerminalStatesAreAbsorbing(t *testing.T) {
	all := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}
	for _, from := range []models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusCancelled} {
		assert.True(t, Terminal(from))
		for _, to := range all {
			err := Transition(from, to)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
		}
	}
}

func TestNoSkippingOrGoingBack(t *testing.T) {
	cases := []struct{ from, to models.OrderStatus }{
		{models.OrderStatusPending, models.OrderStatusShipped},
		{models.OrderStatusPending, models.OrderStatusDelivered},
		{models.OrderStatusConfirmed, models.OrderStatusPending},
		{models.OrderStatusConfirmed, models.OrderStatusDelivered},
		{models.OrderStatusShipped, models.OrderStatusConfirmed},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, Transition(tc.from, tc.to), ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	assert.False(t, ValidStatus("refunded"))
	assert.ErrorIs(t, Transition(models.OrderStatusPending, "refunded"), ErrInvalidTransition)
	assert.False(t, Terminal("refunded"))
}
