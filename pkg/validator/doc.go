// Package validator provides a small set of declarative, type-safe validation
// rules for user-facing form fields such as names, email addresses, passwords,
// ages, and URLs.
//
// A Rule pairs a boolean Check function with the field name and message shown
// on failure. The Apply helper evaluates every rule it receives (never
// short-circuiting, so each field's outcome is refreshed in a single pass) and
// aggregates failures into a ValidationErrors slice that satisfies the error
// interface.
//
// # Architecture
//
// Each source file groups a family of rules for one concern: string_rules.go,
// format_rules.go, password_rules.go, and so on. A rule constructor captures
// its value and returns a plain Rule; nothing is registered globally, so the
// package is stateless and safe for concurrent use. Callers read field values
// fresh and build rules per validation pass.
//
// Core building blocks:
//   - Rule              – struct containing a Check func and error metadata
//   - ValidationError   – describes a single field failure
//   - ValidationErrors  – aggregate of field failures, usable as an error
//   - WithMessage       – overrides a rule's default failure message
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinTrimmedLen("name", name, 2),
//	    validator.EmailAddress("email", email),
//	    validator.Password("password", password, 8),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // inspect field-level messages
//	    }
//	}
//
// # Error Handling
//
// Every rule is a total function: no input string can make a Check panic.
// Failures are reported through ValidationErrors, never through panics or
// sentinel returns from Check itself. Individual field errors can be
// inspected with the helper methods Has, Get, and Fields, and detected at
// boundaries with ExtractValidationErrors or errors.Is against
// ErrValidationFailed.
//
// # Examples
//
// The package tests double as usage examples, including the exact acceptance
// matrices for email, age, and URL handling.
package validator
