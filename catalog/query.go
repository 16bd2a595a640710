// Package catalog filters and sorts an already-fetched product list. The
// store catalog is small, so the whole list is pulled and narrowed in memory.
package catalog

import (
	"sort"
	"strings"

	"github.com/battariah/storefront-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Sort string

const (
	SortBestSelling  Sort = "bestSelling"
	SortNewest       Sort = "newest"
	SortPriceLowHigh Sort = "priceLowHigh"
	SortPriceHighLow Sort = "priceHighLow"
)

// Query narrows a product list. Predicates compose conjunctively; zero
// values mean "no constraint".
type Query struct {
	Search     string
	Brands     []string
	Categories []primitive.ObjectID
	MinPrice   float64
	MaxPrice   float64
	Sort       Sort
}

// Apply filters then sorts, returning a fresh slice.
func (q Query) Apply(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q.matches(p) {
			out = append(out, p)
		}
	}
	q.sortProducts(out)
	return out
}

func (q Query) matches(p models.Product) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.NameAr), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}
	if len(q.Brands) > 0 && !containsFold(q.Brands, p.Brand) {
		return false
	}
	if len(q.Categories) > 0 && !containsID(q.Categories, p.CategoryID) {
		return false
	}
	if q.MinPrice > 0 && p.Price < q.MinPrice {
		return false
	}
	if q.MaxPrice > 0 && p.Price > q.MaxPrice {
		return false
	}
	return true
}

func (q Query) sortProducts(products []models.Product) {
	switch q.Sort {
	case SortBestSelling:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	}
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func containsID(set []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}
