package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/landingkit/pkg/validator"
)

func TestNonZeroNumberInRange(t *testing.T) {
	t.Parallel()

	rule := validator.NonZeroNumberInRange("age", "42", 13, 120)
	assert.True(t, rule.Check())
	assert.Equal(t, "age", rule.Error.Field)
	assert.Equal(t, "must be a number between 13 and 120", rule.Error.Message)

	tests := []struct {
		name     string
		value    string
		min, max float64
		want     bool
	}{
		{"lower bound", "13", 13, 120, true},
		{"upper bound", "120", 13, 120, true},
		{"decimal in range", "13.5", 13, 120, true},
		{"padded with spaces", " 42 ", 13, 120, true},
		{"below range", "12", 13, 120, false},
		{"above range", "121", 13, 120, false},
		{"negative", "-5", 13, 120, false},
		{"empty", "", 13, 120, false},
		{"not a number", "abc", 13, 120, false},
		{"number with trailing junk", "42abc", 13, 120, false},
		{"zero reads as missing", "0", 13, 120, false},
		{"zero rejected even inside range", "0", -10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.NonZeroNumberInRange("age", tt.value, tt.min, tt.max).Check())
		})
	}
}
