package validator

import (
	"regexp"
	"strings"
)

var (
	// Email shape: local@domain.tld with no whitespace anywhere, exactly one
	// @, a dot in the domain, and a final label of at least two characters.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	// Loose web URL: optional http(s) scheme, one or more dot-separated
	// labels, a letters-only TLD of at least two characters, optional path.
	webURLRegex = regexp.MustCompile(`^(https?://)?([A-Za-z0-9-]+\.)+[A-Za-z]{2,}(/\S*)?$`)
)

// EmailAddress validates that a string looks like a deliverable email
// address. The value is trimmed first; embedded whitespace still fails
// because the pattern rejects it.
func EmailAddress(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// WebURL validates that a string is a loosely-shaped web URL. The scheme is
// optional so bare domains like "example.com" pass.
func WebURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return webURLRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
		},
	}
}

// OptionalWebURL validates an optional URL field: empty (after trimming) is
// valid, anything else must satisfy WebURL.
func OptionalWebURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			return v == "" || webURLRegex.MatchString(v)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL or empty",
		},
	}
}
