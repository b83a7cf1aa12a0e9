package entity

import (
	"time"
)

type Role string

const (
	RoleGuest  Role = "guest"
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role can be stored on a user record. Guest is resolved, never stored.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"_id" bson:"_id" firestore:"id"`
	Email     string    `json:"email" bson:"email" firestore:"email"`
	Name      string    `json:"name" bson:"name" firestore:"name"`
	PhotoURL  string    `json:"photoURL,omitempty" bson:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	Provider  string    `json:"provider,omitempty" bson:"provider,omitempty" firestore:"provider,omitempty"`
	Role      Role      `json:"role" bson:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" firestore:"createdAt"`
	LastLogin time.Time `json:"lastLogin" bson:"lastLogin" firestore:"lastLogin"`
}
