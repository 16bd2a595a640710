package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageReply struct {
	Sender    string    `bson:"sender" json:"sender"` // "user" or "admin"
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Message is a support thread: the opening body plus admin/user replies.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Subject   string             `bson:"subject" json:"subject"`
	Body      string             `bson:"body" json:"body"`
	Replies   []MessageReply     `bson:"replies" json:"replies"`
	Read      bool               `bson:"read" json:"read"`
	Resolved  bool               `bson:"resolved" json:"resolved"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
