package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CategoryCollection = "category"

// Category groups products. Slug is the value products reference in
// their category field; it is a soft link, nothing enforces it.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
