package signup

import (
	"github.com/dmitrymomot/landingkit/pkg/validator"
)

// Field keys, matching the input names in the rendered form. Error labels
// derive their element ids from these keys (key + "-error").
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldConfirm  = "confirm-password"
	FieldAge      = "age"
	FieldWebsite  = "website"
	FieldTerms    = "terms"
)

// fieldOrder is the document order of the form. Aggregate validation reports
// failures in this order, and submit focuses the first invalid field by it.
var fieldOrder = []string{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldConfirm,
	FieldAge,
	FieldWebsite,
	FieldTerms,
}

// User-facing failure copy, one message per field.
const (
	msgName     = "Please enter your full name (at least 2 characters)."
	msgEmail    = "Please enter a valid email address."
	msgPassword = "Password must be 8+ characters and include letters and numbers."
	msgConfirm  = "Passwords do not match."
	msgAge      = "Enter a valid age (13 - 120)."
	msgWebsite  = "Please enter a valid URL (or leave blank)."
	msgTerms    = "You must accept the terms."
)

// SignupForm carries one submission's raw field values. Validation always
// reads the values as submitted; nothing persists between requests.
type SignupForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Confirm  string `form:"confirm-password"`
	Age      string `form:"age"`
	Website  string `form:"website"`
	Terms    bool   `form:"terms"`
}

// Rule returns the validation rule for one field key; ok is false for
// unknown keys. The confirmation rule captures the password's current raw
// value, so rules are built fresh for every validation pass.
func (f SignupForm) Rule(field string) (validator.Rule, bool) {
	switch field {
	case FieldName:
		return validator.WithMessage(validator.MinTrimmedLen(FieldName, f.Name, 2), msgName), true
	case FieldEmail:
		return validator.WithMessage(validator.EmailAddress(FieldEmail, f.Email), msgEmail), true
	case FieldPassword:
		return validator.WithMessage(validator.Password(FieldPassword, f.Password, 8), msgPassword), true
	case FieldConfirm:
		return validator.WithMessage(validator.EqualStrings(FieldConfirm, f.Confirm, f.Password), msgConfirm), true
	case FieldAge:
		return validator.WithMessage(validator.NonZeroNumberInRange(FieldAge, f.Age, 13, 120), msgAge), true
	case FieldWebsite:
		return validator.WithMessage(validator.OptionalWebURL(FieldWebsite, f.Website), msgWebsite), true
	case FieldTerms:
		return validator.WithMessage(validator.Accepted(FieldTerms, f.Terms), msgTerms), true
	}
	return validator.Rule{}, false
}

// Rules returns every field rule in document order.
func (f SignupForm) Rules() []validator.Rule {
	rules := make([]validator.Rule, 0, len(fieldOrder))
	for _, field := range fieldOrder {
		rule, _ := f.Rule(field)
		rules = append(rules, rule)
	}
	return rules
}

// Validate runs the aggregate pass: every rule, document order, collecting
// all failures rather than stopping at the first. A nil return means the
// whole form is valid.
func (f SignupForm) Validate() error {
	return validator.Apply(f.Rules()...)
}

// value returns the raw text value for a field key ("" for the checkbox).
func (f SignupForm) value(field string) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldConfirm:
		return f.Confirm
	case FieldAge:
		return f.Age
	case FieldWebsite:
		return f.Website
	}
	return ""
}
