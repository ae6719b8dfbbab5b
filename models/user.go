package models

import "time"

// User is a client account booking organizing services.
type User struct {
	ID           string    `bson:"id" json:"id,omitempty"`
	Name         string    `bson:"name" json:"name,omitempty"`
	Email        string    `bson:"email" json:"email,omitempty"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
