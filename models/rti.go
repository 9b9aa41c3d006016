package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RTIRequest holds the structure for the rti_requests collection
type RTIRequest struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Subject    string             `json:"subject" bson:"subject"`
	Department string             `json:"department" bson:"department"`
	Status     string             `json:"status" bson:"status"`
	UserID     string             `json:"user_id" bson:"user_id"`
	CreatedAt  primitive.DateTime `json:"created_at" bson:"created_at"`
}
