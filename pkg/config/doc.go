// Package config loads typed application configuration from environment
// variables, parsing each configuration struct at most once per process.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Values from a `.env` file in the working directory are loaded first.
//   - `env` field tags map environment variables onto any Go struct.
//   - Each successfully parsed type is cached for the process lifetime.
//   - MustLoad panics for configuration the application cannot start
//     without.
//
// # Architecture
//
// Internally the package keeps one cache entry per fully-qualified type
// name. Each entry gates its parse behind a `sync.Once`, so the parsing work
// is executed at most once per configuration type even when Load is called
// from multiple goroutines.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type ServerConfig struct {
//	    Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
//	    ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to `config.Load(&cfg)` are served from the in-memory cache
// without re-parsing.
//
// # Error Handling
//
// Failures surface as sentinel errors for `errors.Is` checks:
//
//   - `ErrParsingConfig` when env vars cannot be parsed into the struct.
//   - `ErrNilPointer` when a nil pointer is passed to Load.
package config
