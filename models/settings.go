package models

import "time"

const (
	CurrencySAR = "SAR"
	CurrencyUSD = "USD"
)

// Settings is a singleton document. Prices are stored in SAR; the exchange
// rate and VAT values only affect display and checkout-time tax capture.
type Settings struct {
	Currency      string    `bson:"currency" json:"currency"`
	ExchangeRate  float64   `bson:"exchangeRate" json:"exchangeRate"`
	VATEnabled    bool      `bson:"vatEnabled" json:"vatEnabled"`
	VATPercentage float64   `bson:"vatPercentage" json:"vatPercentage"`
	ShippingFee   float64   `bson:"shippingFee" json:"shippingFee"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings seeds the settings document on first boot.
func DefaultSettings() Settings {
	return Settings{
		Currency:      CurrencySAR,
		ExchangeRate:  3.75,
		VATEnabled:    true,
		VATPercentage: 15,
		ShippingFee:   15,
	}
}
