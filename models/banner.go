package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Banner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	TitleAr   string             `bson:"titleAr" json:"titleAr"`
	Image     string             `bson:"image" json:"image" binding:"required"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
