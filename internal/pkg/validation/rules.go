package validation

import (
	"regexp"
	"strings"
)

// Validation patterns and limits shared by the services.
var (
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Roll numbers are 2-10 uppercase alphanumerics, e.g. "7B12".
	RollNumberPattern = `^[A-Z0-9]{2,10}$`

	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 100
)

// CompiledPatterns caches compiled patterns.
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	RollNumber *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	RollNumber: regexp.MustCompile(RollNumberPattern),
}

// IsValidEmail checks an email address against the shared pattern.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsValidRollNumber checks a student roll number.
func IsValidRollNumber(roll string) bool {
	return CompiledPatterns.RollNumber.MatchString(strings.TrimSpace(roll))
}

// NonEmpty reports whether s has content besides whitespace.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// OneOf reports whether value is in the allowed set. Enum-constrained status
// and category fields are validated with this before hitting the database.
func OneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
