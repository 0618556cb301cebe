package validator

import (
	"fmt"
	"regexp"
)

var (
	letterRegex = regexp.MustCompile(`[a-zA-Z]`)
	digitRegex  = regexp.MustCompile(`[0-9]`)
)

// Password validates the raw value against the signup policy: at least min
// characters, at least one letter, and at least one digit. The value is not
// trimmed; leading and trailing spaces count as characters.
func Password(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min &&
				letterRegex.MatchString(value) &&
				digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters with letters and numbers", min),
		},
	}
}

// PasswordLetter validates that the value contains at least one letter.
func PasswordLetter(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return letterRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one letter",
		},
	}
}

// PasswordDigit validates that the value contains at least one digit.
func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one digit",
		},
	}
}
