package controllers

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/battariah/storefront-api/cart"
	"github.com/battariah/storefront-api/database"
	"github.com/battariah/storefront-api/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	database.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func guestLine(price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: primitive.NewObjectID(), Name: "battery", Price: price, Quantity: qty}
}

func TestGuestCartRoundTrip(t *testing.T) {
	testRedis(t)
	ctx := context.Background()

	gc := models.GuestCart{GuestID: "guest-1", Items: []models.CartItem{guestLine(10, 2), guestLine(5, 1)}}
	require.NoError(t, saveGuestCart(ctx, gc))

	loaded, err := loadGuestCart(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, 3, cart.TotalItems(loaded.Items))
	assert.Equal(t, 25.0, cart.Subtotal(loaded.Items))
}

func TestLoadGuestCart_MissingKeyIsEmptyCart(t *testing.T) {
	testRedis(t)

	loaded, err := loadGuestCart(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

// A guest who adds items and then logs in gets the server-side cart for the
// account; the guest items are dropped, not merged.
func TestGuestCartDroppedOnLogin(t *testing.T) {
	testRedis(t)
	ctx := context.Background()

	gc := models.GuestCart{GuestID: "guest-2", Items: []models.CartItem{guestLine(10, 1), guestLine(20, 1)}}
	require.NoError(t, saveGuestCart(ctx, gc))

	require.NoError(t, dropGuestCart(ctx, "guest-2"))

	loaded, err := loadGuestCart(ctx, "guest-2")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestDropGuestCart_MissingKeyIsNoError(t *testing.T) {
	testRedis(t)

	assert.NoError(t, dropGuestCart(context.Background(), "never-existed"))
}
