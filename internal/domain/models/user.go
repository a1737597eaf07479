// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents salespeople, managers, and admins.
//
// NOTE:
//   - Territory links are not embedded on User.
//     Use the territory_assignments collection to discover a
//     salesperson's territories.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	EmailCI    string             `bson:"email_ci" json:"email_ci"`
	Role       string             `bson:"role" json:"role"` // salesperson | manager | admin
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`

	// Credentials. PasswordHash is set only for internal auth;
	// AuthReturnID holds the provider's subject ID for OAuth users.
	AuthMethod   string `bson:"auth_method,omitempty" json:"auth_method,omitempty"`
	AuthReturnID string `bson:"auth_return_id,omitempty" json:"-"`
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
