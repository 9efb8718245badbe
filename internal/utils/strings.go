package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValidEmail checks that email looks like an address: exactly one usable '@'
// with non-empty local and domain parts and no whitespace.
func IsValidEmail(email string) bool {
	if email == "" || strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.Contains(email[:at], "@")
}

// IsValidProfileName checks that a profile name is non-empty and has no
// whitespace or control characters, so it survives a round trip through a
// .gswitch marker.
func IsValidProfileName(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
