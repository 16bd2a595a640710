package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name" binding:"required"`
	NameAr string             `bson:"nameAr" json:"nameAr"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
}

type Brand struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name" binding:"required"`
	NameAr string             `bson:"nameAr" json:"nameAr"`
	Logo   string             `bson:"logo,omitempty" json:"logo,omitempty"`
}
