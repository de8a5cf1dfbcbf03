package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medicine is one line item on a prescription.
type Medicine struct {
	Name      string `json:"name" bson:"name"`
	Dosage    string `json:"dosage" bson:"dosage"`       // e.g. "500mg"
	Frequency string `json:"frequency" bson:"frequency"` // e.g. "Twice a day"
	Duration  string `json:"duration" bson:"duration"`   // e.g. "5 days"
}

// Prescription is scoped to the doctor that wrote it and references a
// patient owned by the same doctor.
type Prescription struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorID     string             `json:"doctor_id" bson:"doctor_id"`
	PatientID    string             `json:"patient_id" bson:"patient_id"`
	Symptoms     string             `json:"symptoms" bson:"symptoms"`
	Medicines    []Medicine         `json:"medicines" bson:"medicines"`
	Notes        *string            `json:"notes,omitempty" bson:"notes,omitempty"`
	FollowUpDays *int               `json:"follow_up_days,omitempty" bson:"follow_up_days,omitempty"`
	CreatedAt    int64              `json:"created_at" bson:"created_at"`
	UpdatedAt    int64              `json:"updated_at" bson:"updated_at"`
}
