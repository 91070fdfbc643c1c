// Package identity resolves the identity string that namespaces
// client-side state per signed-in user.
package identity

import "strings"

// Anonymous is the identity used when no user information is configured.
const Anonymous = "anon"

// Resolve returns the identity key for the given user information:
// the uid when present, else the email, else Anonymous.
func Resolve(uid, email string) string {
	if v := strings.TrimSpace(uid); v != "" {
		return v
	}
	if v := strings.TrimSpace(email); v != "" {
		return v
	}
	return Anonymous
}
