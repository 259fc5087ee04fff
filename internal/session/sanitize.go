package session

import "strings"

// SanitizeDigits keeps ASCII digits only.
func SanitizeDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
