package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateID generates a unique ID with the given prefix
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ValidateAccountID validates the account ID format
func ValidateAccountID(id string) bool {
	prefix, rest, ok := strings.Cut(id, "-")
	if !ok || prefix != "acc" {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}
