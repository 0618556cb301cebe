package logger

import (
	"fmt"
	"log/slog"
)

type Config struct {
	Level  string `env:"LOG_LEVEL"`  // Level is the minimum level: debug, info, warn, error. Empty keeps the preset level.
	Format string `env:"LOG_FORMAT"` // Format is the output encoding: json or text. Empty keeps the preset format.
}

// NewFromConfig creates a logger from environment configuration. Config
// values are applied after opts, so an explicit LOG_LEVEL or LOG_FORMAT wins
// over presets such as WithEnvironment. Invalid values panic, preventing
// startup with a miswired logger.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := make([]Option, 0, 2)

	if cfg.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			panic(fmt.Errorf("invalid log level %q: %w", cfg.Level, err))
		}
		configOpts = append(configOpts, WithLevel(lvl))
	}
	if cfg.Format != "" {
		configOpts = append(configOpts, WithFormat(Format(cfg.Format)))
	}

	all := make([]Option, 0, len(opts)+len(configOpts))
	all = append(all, opts...)
	all = append(all, configOpts...)

	return New(all...)
}
