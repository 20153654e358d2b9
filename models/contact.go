package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContactSubmission — one contact-form submission from the website.
// Collection: "contactsubmission". Documents are write-once: never mutated
// or deleted by this service.
type ContactSubmission struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name"              json:"name"`
	Phone    string             `bson:"phone"             json:"phone"`
	Village  string             `bson:"village,omitempty" json:"village,omitempty"`
	District string             `bson:"district,omitempty" json:"district,omitempty"`
	Message  string             `bson:"message,omitempty" json:"message,omitempty"`
	Source   string             `bson:"source"            json:"source"` // "web" or "app"
}
