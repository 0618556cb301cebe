package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/landingkit/pkg/validator"
)

func TestEmailAddress(t *testing.T) {
	t.Run("passes for minimal valid address", func(t *testing.T) {
		rule := validator.EmailAddress("email", "a@b.co")
		assert.True(t, rule.Check())
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "must be a valid email address", rule.Error.Message)
	})

	t.Run("passes for typical address", func(t *testing.T) {
		rule := validator.EmailAddress("email", "user.name+tag@example.com")
		assert.True(t, rule.Check())
	})

	t.Run("passes for subdomain address", func(t *testing.T) {
		rule := validator.EmailAddress("email", "user@mail.example.co")
		assert.True(t, rule.Check())
	})

	t.Run("trims surrounding whitespace before matching", func(t *testing.T) {
		rule := validator.EmailAddress("email", "  a@b.co  ")
		assert.True(t, rule.Check())
	})

	t.Run("fails without a dot in the domain", func(t *testing.T) {
		rule := validator.EmailAddress("email", "a@b")
		assert.False(t, rule.Check())
	})

	t.Run("fails with embedded whitespace", func(t *testing.T) {
		rule := validator.EmailAddress("email", "a b@c.com")
		assert.False(t, rule.Check())
	})

	t.Run("fails with empty local part", func(t *testing.T) {
		rule := validator.EmailAddress("email", "@b.com")
		assert.False(t, rule.Check())
	})

	t.Run("fails with single-character final label", func(t *testing.T) {
		rule := validator.EmailAddress("email", "a@b.c")
		assert.False(t, rule.Check())
	})

	t.Run("fails with two at signs", func(t *testing.T) {
		rule := validator.EmailAddress("email", "a@@b.com")
		assert.False(t, rule.Check())
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := validator.EmailAddress("email", "")
		assert.False(t, rule.Check())
	})
}

func TestWebURL(t *testing.T) {
	t.Run("passes for bare domain", func(t *testing.T) {
		rule := validator.WebURL("website", "example.com")
		assert.True(t, rule.Check())
		assert.Equal(t, "website", rule.Error.Field)
		assert.Equal(t, "must be a valid URL", rule.Error.Message)
	})

	t.Run("passes with https scheme and path", func(t *testing.T) {
		rule := validator.WebURL("website", "https://example.co/path")
		assert.True(t, rule.Check())
	})

	t.Run("passes with http scheme", func(t *testing.T) {
		rule := validator.WebURL("website", "http://example.com")
		assert.True(t, rule.Check())
	})

	t.Run("passes for multi-label domain", func(t *testing.T) {
		rule := validator.WebURL("website", "www.sub.example.io")
		assert.True(t, rule.Check())
	})

	t.Run("fails for text with spaces", func(t *testing.T) {
		rule := validator.WebURL("website", "not a url")
		assert.False(t, rule.Check())
	})

	t.Run("fails for missing TLD", func(t *testing.T) {
		rule := validator.WebURL("website", "example")
		assert.False(t, rule.Check())
	})

	t.Run("fails for single-character TLD", func(t *testing.T) {
		rule := validator.WebURL("website", "example.c")
		assert.False(t, rule.Check())
	})

	t.Run("fails for unsupported scheme", func(t *testing.T) {
		rule := validator.WebURL("website", "ftp://example.com")
		assert.False(t, rule.Check())
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := validator.WebURL("website", "")
		assert.False(t, rule.Check())
	})
}

func TestOptionalWebURL(t *testing.T) {
	t.Run("passes for empty string", func(t *testing.T) {
		rule := validator.OptionalWebURL("website", "")
		assert.True(t, rule.Check())
	})

	t.Run("passes for whitespace-only string", func(t *testing.T) {
		rule := validator.OptionalWebURL("website", "   ")
		assert.True(t, rule.Check())
	})

	t.Run("passes for valid URL", func(t *testing.T) {
		rule := validator.OptionalWebURL("website", "https://example.co/path")
		assert.True(t, rule.Check())
	})

	t.Run("fails for invalid URL", func(t *testing.T) {
		rule := validator.OptionalWebURL("website", "not a url")
		assert.False(t, rule.Check())
		assert.Equal(t, "must be a valid URL or empty", rule.Error.Message)
	})
}
