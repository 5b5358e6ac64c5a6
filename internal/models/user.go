package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an application user synchronized from Auth0 token claims.
// auth0Id is the stable identity key; every other field is overwritten on
// each sync when the corresponding claim is present.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Auth0ID   string             `bson:"auth0Id" json:"auth0Id"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Picture   string             `bson:"picture,omitempty" json:"picture,omitempty"`
	LastLogin time.Time          `bson:"lastLogin" json:"lastLogin"`
	Roles     []string           `bson:"roles" json:"roles"`
}
