package cookie

import (
	"net/http"
	"strings"
)

// Config drives cookie defaults from the environment. Every attribute
// has a sensible zero fallback, so an empty environment yields the same
// Manager as New(nil).
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// secretList splits COOKIE_SECRETS on commas and trims whitespace around
// each entry. Blank entries are dropped so trailing commas are harmless.
func (c Config) secretList() []string {
	var secrets []string
	for _, s := range strings.Split(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// options translates the populated config fields into Option overrides.
// Zero values are skipped so the Manager defaults stay in effect.
func (c Config) options() []Option {
	var opts []Option
	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		opts = append(opts, WithSecure(true))
	}
	if c.HttpOnly {
		opts = append(opts, WithHTTPOnly(true))
	}
	if c.SameSite != 0 {
		opts = append(opts, WithSameSite(c.SameSite))
	}
	return opts
}

// NewFromConfig builds a Manager from environment-driven Config.
// Explicit opts are applied after the config so callers can still win.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	return New(cfg.secretList(), append(cfg.options(), opts...)...)
}
