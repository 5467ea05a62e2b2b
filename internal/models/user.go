package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created at registration and never mutated or deleted.
// Password holds the hex digest of the password, never the plaintext.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
