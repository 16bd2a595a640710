package cart

import (
	"testing"

	"github.com/battariah/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func line(id primitive.ObjectID, price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: id, Name: "item", Price: price, Quantity: qty}
}

func TestAdd_RepeatedSameProduct(t *testing.T) {
	id := primitive.NewObjectID()
	var items []models.CartItem

	for i := 0; i < 5; i++ {
		items = Add(items, line(id, 10, 1))
	}

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAdd_NewProductStartsAtOne(t *testing.T) {
	items := Add(nil, models.CartItem{ProductID: primitive.NewObjectID(), Price: 10})
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAdd_KeepsExistingSnapshot(t *testing.T) {
	id := primitive.NewObjectID()
	items := Add(nil, models.CartItem{ProductID: id, Name: "original", Price: 10, Quantity: 1})
	items = Add(items, models.CartItem{ProductID: id, Name: "renamed", Price: 99, Quantity: 1})

	require.Len(t, items, 1)
	assert.Equal(t, "original", items[0].Name)
	assert.Equal(t, 10.0, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSetQuantity_ZeroBehavesAsRemove(t *testing.T) {
	id := primitive.NewObjectID()
	items := Add(nil, line(id, 10, 3))

	updated, ok := SetQuantity(items, id, 0)
	require.True(t, ok)
	assert.Nil(t, Find(updated, id))
	assert.Empty(t, updated)
}

func TestSetQuantity_SetsOutright(t *testing.T) {
	id := primitive.NewObjectID()
	items := Add(nil, line(id, 10, 3))

	updated, ok := SetQuantity(items, id, 7)
	require.True(t, ok)
	assert.Equal(t, 7, Find(updated, id).Quantity)
}

func TestSetQuantity_MissingProduct(t *testing.T) {
	_, ok := SetQuantity(nil, primitive.NewObjectID(), 2)
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	items := Add(Add(nil, line(a, 10, 1)), line(b, 5, 1))

	items = Remove(items, a)
	require.Len(t, items, 1)
	assert.Equal(t, b, items[0].ProductID)

	// removing an absent id is a no-op
	items = Remove(items, a)
	assert.Len(t, items, 1)
}

func TestTotals(t *testing.T) {
	items := []models.CartItem{
		line(primitive.NewObjectID(), 10, 2),
		line(primitive.NewObjectID(), 5, 1),
	}

	assert.Equal(t, 3, TotalItems(items))
	assert.Equal(t, 25.0, Subtotal(items))
}

func TestSubtotal_RecomputationIsStable(t *testing.T) {
	items := []models.CartItem{
		line(primitive.NewObjectID(), 19.99, 3),
		line(primitive.NewObjectID(), 0.1, 7),
	}

	first := Subtotal(items)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Subtotal(items))
	}
}

func TestTotals_EmptyCart(t *testing.T) {
	assert.Equal(t, 0, TotalItems(nil))
	assert.Equal(t, 0.0, Subtotal(nil))
}
