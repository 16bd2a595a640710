package pricing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/battariah/storefront-api/models"
	"github.com/stretchr/testify/assert"
)

func sarSettings() models.Settings {
	return models.Settings{
		Currency:      models.CurrencySAR,
		ExchangeRate:  3.75,
		VATEnabled:    true,
		VATPercentage: 15,
		ShippingFee:   15,
	}
}

func TestFormatPrice_SAR(t *testing.T) {
	s := sarSettings()

	assert.Equal(t, "149.50 SAR", FormatPrice(149.5, s))
	assert.Equal(t, "0.00 SAR", FormatPrice(0, s))
}

// The SAR rendering must contain the two-decimal form of the input magnitude.
func TestFormatPrice_SARRoundTrip(t *testing.T) {
	s := sarSettings()
	for _, x := range []float64{1, 10.5, 99.99, 1234.567, 0.005} {
		formatted := FormatPrice(x, s)
		assert.True(t, strings.Contains(formatted, fmt.Sprintf("%.2f", x)),
			"FormatPrice(%v) = %q", x, formatted)
	}
}

func TestFormatPrice_USD(t *testing.T) {
	s := sarSettings()
	s.Currency = models.CurrencyUSD

	// 375 SAR / 3.75 = 100 USD
	assert.Equal(t, "$100.00", FormatPrice(375, s))
}

func TestFormatPrice_USDZeroRateFallsBackToSAR(t *testing.T) {
	s := sarSettings()
	s.Currency = models.CurrencyUSD
	s.ExchangeRate = 0

	assert.Equal(t, "375.00 SAR", FormatPrice(375, s))
}

func TestCalculateTax_DisabledIsAlwaysZero(t *testing.T) {
	s := sarSettings()
	s.VATEnabled = false

	for _, subtotal := range []float64{0, 1, 100, 99999.99} {
		assert.Equal(t, 0.0, CalculateTax(subtotal, s))
	}

	s.VATPercentage = 100
	assert.Equal(t, 0.0, CalculateTax(500, s))
}

func TestCalculateTax_FifteenPercent(t *testing.T) {
	s := sarSettings()

	assert.Equal(t, 15.0, CalculateTax(100, s))
	assert.Equal(t, 115.0, CalculateTotal(100, s))
}

func TestCheckoutTotal_AddsShipping(t *testing.T) {
	s := sarSettings()

	// 100 + 15 VAT + 15 shipping
	assert.Equal(t, 130.0, CheckoutTotal(100, s))

	s.VATEnabled = false
	assert.Equal(t, 115.0, CheckoutTotal(100, s))
}
