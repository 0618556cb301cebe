package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// NonZeroNumberInRange validates a numeric value submitted as text. Empty
// input, unparseable input, and an exact zero all fail uniformly (zero is
// indistinguishable from "no usable number" by contract); any other parsed
// value must satisfy min <= value <= max.
func NonZeroNumberInRange(field, value string, min, max float64) Rule {
	return Rule{
		Check: func() bool {
			n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || n == 0 {
				return false
			}
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a number between %v and %v", min, max),
		},
	}
}
