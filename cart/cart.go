// Package cart implements the line-item operations shared by the user cart
// (Mongo document) and the guest cart (Redis value). The invariant is one
// entry per product id.
package cart

import (
	"time"

	"github.com/battariah/storefront-api/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Add appends the item with quantity 1, or increments the existing line when
// the product is already in the cart. The snapshot fields of an existing line
// are left untouched.
func Add(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].AddedAt = time.Now()
			if item.Quantity > 0 {
				items[i].Quantity += item.Quantity
			} else {
				items[i].Quantity++
			}
			return items
		}
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	item.AddedAt = time.Now()
	return append(items, item)
}

// Remove deletes the line for the given product id, if present.
func Remove(items []models.CartItem, productID primitive.ObjectID) []models.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// SetQuantity sets the line quantity outright (not a delta). A quantity of
// zero or less removes the line. Returns false when the product is not in
// the cart and qty is positive.
func SetQuantity(items []models.CartItem, productID primitive.ObjectID, qty int) ([]models.CartItem, bool) {
	if qty <= 0 {
		return Remove(items, productID), true
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			return items, true
		}
	}
	return items, false
}

// Find returns the line for the product id, or nil.
func Find(items []models.CartItem, productID primitive.ObjectID) *models.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			return &items[i]
		}
	}
	return nil
}

// TotalItems is the sum of line quantities.
func TotalItems(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity over all lines, in the base
// currency.
func Subtotal(items []models.CartItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	f, _ := sum.Round(2).Float64()
	return f
}
