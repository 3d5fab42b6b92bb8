package domain

import "strings"

// NormalizeEmail prepares an email address for storage and comparison:
// trims surrounding whitespace and lowercases. Invitation acceptance matches
// on normalized equality only, so "Coach@Example.com" and "coach@example.com"
// are the same collaborator.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
