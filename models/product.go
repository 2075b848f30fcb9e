package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const ProductCollection = "product"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"` // category slug
	InStock     bool               `bson:"in_stock" json:"in_stock"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
}
