package utils

import "strings"

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Tokens splits s on runs of whitespace
func Tokens(s string) []string {
	return strings.Fields(s)
}
