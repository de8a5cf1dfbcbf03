package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient belongs to exactly one doctor; only that doctor may read or
// mutate it. Timestamps are epoch seconds.
type Patient struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorID    string             `json:"doctor_id" bson:"doctor_id"`
	Username    string             `json:"username" bson:"username"`
	Email       string             `json:"email" bson:"email"`
	PhoneNumber string             `json:"PhoneNumber" bson:"PhoneNumber"`
	Age         int                `json:"age" bson:"age"`
	Gender      string             `json:"gender" bson:"gender"`
	Weight      int                `json:"weight" bson:"weight"`
	CreatedAt   int64              `json:"created_at" bson:"created_at"`
	UpdatedAt   int64              `json:"updated_at" bson:"updated_at"`
}
