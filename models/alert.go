package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeatherAlertSubscription — a farmer's request for weather alerts at a
// location. Collection: "weatheralert". Created once on subscribe; there is
// no update or unsubscribe operation.
type WeatherAlertSubscription struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userId"    json:"userId"`
	Latitude  float64            `bson:"lat"       json:"lat"`
	Longitude float64            `bson:"lon"       json:"lon"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Active    bool               `bson:"active"    json:"active"`
}
