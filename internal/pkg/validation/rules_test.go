package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"teacher@school.edu", true},
		{"  Admin@School.Dev  ", true},
		{"first.last+tag@sub.domain.org", true},
		{"", false},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@nouser.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidRollNumber(t *testing.T) {
	tests := []struct {
		roll string
		want bool
	}{
		{"7B12", true},
		{"AB", true},
		{"1234567890", true},
		{" 7B12 ", true},
		{"a1", false},
		{"X", false},
		{"12345678901", false},
		{"7B-12", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.roll, func(t *testing.T) {
			if got := IsValidRollNumber(tt.roll); got != tt.want {
				t.Errorf("IsValidRollNumber(%q) = %v, want %v", tt.roll, got, tt.want)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	statuses := []string{"Pending", "Approved", "Rejected"}

	if !OneOf("Approved", statuses...) {
		t.Error("OneOf() rejected a member of the set")
	}
	if OneOf("approved", statuses...) {
		t.Error("OneOf() is not case sensitive")
	}
	if OneOf("", statuses...) {
		t.Error("OneOf() accepted the empty string")
	}
	if OneOf("Pending") {
		t.Error("OneOf() accepted a value against an empty set")
	}
}

func TestNonEmpty(t *testing.T) {
	if NonEmpty("   ") {
		t.Error("NonEmpty() accepted whitespace")
	}
	if !NonEmpty(" x ") {
		t.Error("NonEmpty() rejected padded content")
	}
}
