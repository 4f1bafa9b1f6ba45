package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Dimensions struct {
	Width  float64 `bson:"width" json:"width"`
	Depth  float64 `bson:"depth" json:"depth"`
	Height float64 `bson:"height" json:"height"`
}

type Product struct {
	ID          primitive.ObjectID `json:"productId,omitempty" bson:"_id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Slug        string             `bson:"slug" json:"slug" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Material    string             `bson:"material" json:"material,omitempty"`
	Dimensions  Dimensions         `bson:"dimensions" json:"dimensions"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Stock       int                `bson:"stock" json:"stock"`
	Images      []string           `bson:"images" json:"images"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
