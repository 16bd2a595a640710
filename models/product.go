package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name" binding:"required"`
	NameAr     string             `bson:"nameAr" json:"nameAr"`
	Brand      string             `bson:"brand" json:"brand"`
	CategoryID primitive.ObjectID `bson:"categoryId,omitempty" json:"categoryId"`
	Price      float64            `bson:"price" json:"price" binding:"required"`
	OldPrice   float64            `bson:"oldPrice,omitempty" json:"oldPrice,omitempty"`
	Image      string             `bson:"image" json:"image"`
	Rating     float64            `bson:"rating" json:"rating"`
	Reviews    int                `bson:"reviews" json:"reviews"`
	Stock      int                `bson:"stock" json:"stock"`
	BestSeller bool               `bson:"bestSeller" json:"bestSeller"`
	IsNew      bool               `bson:"isNew" json:"isNew"`
	Active     bool               `bson:"active" json:"active"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
