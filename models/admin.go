package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin represents a dashboard operator account. PasswordHash is a bcrypt
// hash; rows seeded before hashing was introduced carry a plaintext Password
// instead, which login still accepts.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	Password     string             `bson:"password,omitempty" json:"-"`
	Active       bool               `bson:"active" json:"active"`
	CreatedAt    primitive.DateTime `bson:"created_at" json:"created_at"`
}
