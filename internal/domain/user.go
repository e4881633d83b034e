package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account holder. The profile is filled in after registration and
// stays nil until then.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // never exposed
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	Profile *UserProfile `bson:"profile,omitempty" json:"profile,omitempty"`
}

// HasProfile reports whether the user has completed their profile.
func (u *User) HasProfile() bool {
	return u.Profile != nil
}
