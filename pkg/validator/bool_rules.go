package validator

// Accepted validates that a boolean control, such as a terms-of-service
// checkbox, is set.
func Accepted(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be accepted",
		},
	}
}
