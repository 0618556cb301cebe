package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MinTrimmedLen validates that a string, after trimming surrounding
// whitespace, is at least min characters long. Whitespace-only input fails.
func MinTrimmedLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(strings.TrimSpace(value)) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// EqualStrings validates that a value equals another raw value, byte for
// byte. No trimming or case folding is applied; confirmation fields compare
// exactly what the user typed.
func EqualStrings(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:   field,
			Message: "values do not match",
		},
	}
}
