// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a found flag.
// If no user is present in context or the user ID is malformed, it returns
// "visitor", "", NilObjectID, false. This ensures callers can trust that
// ok=true means a valid, authenticated user with a valid ObjectID.
// The role is normalized to lowercase for consistent comparison.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed for security.
		// This should not happen in normal operation; indicates session corruption.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsSalesperson reports whether the current request's user is a salesperson.
func IsSalesperson(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleSalesperson
}

// IsManager reports whether the current request's user is a manager.
// Note: Admins are also considered managers for permission purposes.
func IsManager(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && (role == RoleManager || role == RoleAdmin)
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAdmin
}
