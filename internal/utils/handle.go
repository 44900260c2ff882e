package utils

import (
	"fmt"
	"math/rand"
	"strings"
)

// NormalizeHandle canonicalizes a chat handle to the "@name" form,
// trimming whitespace and collapsing duplicate prefixes
func NormalizeHandle(handle string) string {
	trimmed := strings.TrimSpace(handle)
	trimmed = strings.TrimLeft(trimmed, "@")
	if trimmed == "" {
		return ""
	}
	return "@" + trimmed
}

// BareHandle strips the leading "@" and lowercases, the form used when
// matching an inbound message sender against a pending login attempt
func BareHandle(handle string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(handle), "@"))
}

// GenerateOTPCode returns a fresh 6-digit numeric one-time code
func GenerateOTPCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
