package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Promo is a marketing banner shown on the storefront.
type Promo struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Subtitle  string             `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Image     string             `json:"image" bson:"image"`
	LinkTo    string             `json:"linkTo,omitempty" bson:"linkTo,omitempty"`
	Active    bool               `json:"active" bson:"active"`
	StartsAt  time.Time          `json:"startsAt" bson:"startsAt"`
	EndsAt    time.Time          `json:"endsAt" bson:"endsAt"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
