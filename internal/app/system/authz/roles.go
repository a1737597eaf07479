// internal/app/system/authz/roles.go
package authz

// Role names as stored on user documents (always lowercase).
const (
	RoleSalesperson = "salesperson"
	RoleManager     = "manager"
	RoleAdmin       = "admin"
)

// KnownRole reports whether the (already lowercased) role is one the
// app recognizes.
func KnownRole(role string) bool {
	switch role {
	case RoleSalesperson, RoleManager, RoleAdmin:
		return true
	}
	return false
}
