// Package normalize holds the small canonicalization helpers used when
// reading user-supplied or stored values. Keeping them in one place
// means every comparison in the app sees the same form.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name; case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role string.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a status string.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AuthMethod lowercases and trims an auth method string.
func AuthMethod(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
