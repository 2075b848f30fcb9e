package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserCollection is the store collection users live in.
const UserCollection = "user"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}
