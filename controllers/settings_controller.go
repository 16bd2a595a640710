package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/battariah/storefront-api/database"
	"github.com/battariah/storefront-api/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetSettings is public: the storefront needs the currency and VAT snapshot
// to render prices.
func GetSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	settings, err := loadSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": settings})
}

func UpdateSettings(c *gin.Context) {
	var body struct {
		Currency      *string  `json:"currency"`
		ExchangeRate  *float64 `json:"exchangeRate"`
		VATEnabled    *bool    `json:"vatEnabled"`
		VATPercentage *float64 `json:"vatPercentage"`
		ShippingFee   *float64 `json:"shippingFee"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	update := bson.M{}
	if body.Currency != nil {
		if *body.Currency != models.CurrencySAR && *body.Currency != models.CurrencyUSD {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency"})
			return
		}
		update["currency"] = *body.Currency
	}
	if body.ExchangeRate != nil {
		if *body.ExchangeRate <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Exchange rate must be positive"})
			return
		}
		update["exchangeRate"] = *body.ExchangeRate
	}
	if body.VATEnabled != nil {
		update["vatEnabled"] = *body.VATEnabled
	}
	if body.VATPercentage != nil {
		if *body.VATPercentage < 0 || *body.VATPercentage > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "VAT percentage must be between 0 and 100"})
			return
		}
		update["vatPercentage"] = *body.VATPercentage
	}
	if body.ShippingFee != nil {
		if *body.ShippingFee < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping fee cannot be negative"})
			return
		}
		update["shippingFee"] = *body.ShippingFee
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}
	update["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Seed the singleton first so the update always matches.
	if _, err := loadSettings(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	_, err := database.SettingsCollection.UpdateOne(ctx, bson.M{}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	settings, err := loadSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "data": settings})
}
