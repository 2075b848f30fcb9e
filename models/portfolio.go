package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const PortfolioCollection = "portfolio"

// Portfolio is a past-work showcase entry.
type Portfolio struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ClientName  string             `bson:"client_name,omitempty" json:"client_name,omitempty"`
}
