// Package pricing holds the display/tax/total arithmetic. Every function
// takes an explicit Settings snapshot so results are reproducible; nothing
// here reads ambient state.
package pricing

import (
	"github.com/battariah/storefront-api/models"
	"github.com/shopspring/decimal"
)

// FormatPrice renders a base-currency (SAR) amount for display. In SAR the
// amount is kept as-is with the code suffixed; in USD it is divided by the
// exchange rate and prefixed with the dollar sign. Two decimals either way.
func FormatPrice(baseAmount float64, s models.Settings) string {
	amount := decimal.NewFromFloat(baseAmount)
	if s.Currency == models.CurrencyUSD && s.ExchangeRate > 0 {
		rate := decimal.NewFromFloat(s.ExchangeRate)
		return "$" + amount.Div(rate).StringFixed(2)
	}
	return amount.StringFixed(2) + " " + models.CurrencySAR
}

// CalculateTax returns the VAT owed on a subtotal, zero when VAT is disabled.
func CalculateTax(subtotal float64, s models.Settings) float64 {
	if !s.VATEnabled {
		return 0
	}
	tax := decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(s.VATPercentage)).
		Div(decimal.NewFromInt(100))
	f, _ := tax.Round(2).Float64()
	return f
}

// CalculateTotal is subtotal plus tax.
func CalculateTotal(subtotal float64, s models.Settings) float64 {
	total := decimal.NewFromFloat(subtotal).
		Add(decimal.NewFromFloat(CalculateTax(subtotal, s)))
	f, _ := total.Round(2).Float64()
	return f
}

// CheckoutTotal is subtotal plus tax plus the flat shipping fee.
func CheckoutTotal(subtotal float64, s models.Settings) float64 {
	total := decimal.NewFromFloat(CalculateTotal(subtotal, s)).
		Add(decimal.NewFromFloat(s.ShippingFee))
	f, _ := total.Round(2).Float64()
	return f
}
