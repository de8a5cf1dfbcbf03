package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is the authenticated principal of the system. Email and username
// are stored lowercased and must be unique across doctors; Password holds
// the bcrypt hash, never the plain text.
type Doctor struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	CreatedAt int64              `json:"created_at" bson:"created_at"`
	UpdatedAt int64              `json:"updated_at" bson:"updated_at"`
}
