package controllers

import (
	"context"

	"github.com/battariah/storefront-api/database"
	"github.com/battariah/storefront-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// loadSettings returns the settings snapshot, seeding the singleton document
// with defaults on first use.
func loadSettings(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	err := database.SettingsCollection.FindOne(ctx, bson.M{}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		s = models.DefaultSettings()
		_, err = database.SettingsCollection.InsertOne(ctx, s)
		return s, err
	}
	return s, err
}

func fetchProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := database.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// snapshotItem freezes the product fields a cart line carries.
func snapshotItem(p *models.Product, qty int) models.CartItem {
	return models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		NameAr:    p.NameAr,
		Brand:     p.Brand,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  qty,
	}
}
