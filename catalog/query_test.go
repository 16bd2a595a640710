package catalog

import (
	"testing"

	"github.com/battariah/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	catBatteries = primitive.NewObjectID()
	catChargers  = primitive.NewObjectID()
)

func fixture() []models.Product {
	return []models.Product{
		{Name: "AGM Battery 70Ah", NameAr: "بطارية", Brand: "Varta", CategoryID: catBatteries, Price: 450, Reviews: 120, IsNew: false},
		{Name: "EFB Battery 60Ah", Brand: "Bosch", CategoryID: catBatteries, Price: 380, Reviews: 45, IsNew: true},
		{Name: "Smart Charger", Brand: "NOCO", CategoryID: catChargers, Price: 220, Reviews: 300, IsNew: true},
		{Name: "Trickle Charger", Brand: "Bosch", CategoryID: catChargers, Price: 95, Reviews: 12, IsNew: false},
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestSearch_CaseInsensitiveOverNameAndBrand(t *testing.T) {
	got := Query{Search: "bosch"}.Apply(fixture())
	assert.ElementsMatch(t, []string{"EFB Battery 60Ah", "Trickle Charger"}, names(got))

	got = Query{Search: "CHARGER"}.Apply(fixture())
	assert.ElementsMatch(t, []string{"Smart Charger", "Trickle Charger"}, names(got))
}

func TestSearch_ArabicName(t *testing.T) {
	got := Query{Search: "بطارية"}.Apply(fixture())
	require.Len(t, got, 1)
	assert.Equal(t, "AGM Battery 70Ah", got[0].Name)
}

func TestFilters_ComposeConjunctively(t *testing.T) {
	got := Query{Brands: []string{"Bosch"}, Categories: []primitive.ObjectID{catChargers}}.Apply(fixture())
	require.Len(t, got, 1)
	assert.Equal(t, "Trickle Charger", got[0].Name)
}

// Independent predicates commute: brand-then-category equals category-then-brand.
func TestFilters_Commutativity(t *testing.T) {
	products := fixture()

	brandFirst := Query{Categories: []primitive.ObjectID{catBatteries}}.Apply(
		Query{Brands: []string{"Bosch"}}.Apply(products))
	categoryFirst := Query{Brands: []string{"Bosch"}}.Apply(
		Query{Categories: []primitive.ObjectID{catBatteries}}.Apply(products))

	assert.Equal(t, names(brandFirst), names(categoryFirst))
}

func TestPriceRange(t *testing.T) {
	got := Query{MinPrice: 100, MaxPrice: 400}.Apply(fixture())
	assert.ElementsMatch(t, []string{"EFB Battery 60Ah", "Smart Charger"}, names(got))
}

func TestSort_PriceLowHigh(t *testing.T) {
	got := Query{Sort: SortPriceLowHigh}.Apply(fixture())
	assert.Equal(t, []string{"Trickle Charger", "Smart Charger", "EFB Battery 60Ah", "AGM Battery 70Ah"}, names(got))
}

func TestSort_PriceHighLow(t *testing.T) {
	got := Query{Sort: SortPriceHighLow}.Apply(fixture())
	assert.Equal(t, []string{"AGM Battery 70Ah", "EFB Battery 60Ah", "Smart Charger", "Trickle Charger"}, names(got))
}

func TestSort_BestSelling(t *testing.T) {
	got := Query{Sort: SortBestSelling}.Apply(fixture())
	assert.Equal(t, "Smart Charger", got[0].Name)
	assert.Equal(t, "AGM Battery 70Ah", got[1].Name)
}

func TestSort_NewestKeepsRelativeOrder(t *testing.T) {
	got := Query{Sort: SortNewest}.Apply(fixture())
	// isNew first, original order preserved within each group
	assert.Equal(t, []string{"EFB Battery 60Ah", "Smart Charger", "AGM Battery 70Ah", "Trickle Charger"}, names(got))
}

func TestSort_Idempotent(t *testing.T) {
	q := Query{Sort: SortPriceLowHigh}
	once := q.Apply(fixture())
	twice := q.Apply(once)
	assert.Equal(t, names(once), names(twice))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := fixture()
	original := names(products)

	Query{Sort: SortPriceHighLow}.Apply(products)
	assert.Equal(t, original, names(products))
}

func TestEmptyQueryReturnsAll(t *testing.T) {
	assert.Len(t, Query{}.Apply(fixture()), 4)
}
