package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Citizen holds the structure for the citizens collection. Profiles are
// created by the citizen-facing bot; this service only reads them.
type Citizen struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	Name            string             `json:"name" bson:"name"`
	Mobile          string             `json:"mobile" bson:"mobile"`
	MobileVerified  bool               `json:"mobile_verified" bson:"mobile_verified"`
	AadhaarVerified bool               `json:"aadhaar_verified" bson:"aadhaar_verified"`
	CreatedAt       primitive.DateTime `json:"created_at" bson:"created_at"`
}
