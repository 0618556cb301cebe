// Package cookie provides a convenient HTTP cookie manager.
//
// It wraps Go's net/http `http.Cookie` type with higher-level helpers for
// creating, reading and deleting cookies, plus optional HMAC-SHA256 signing
// for values that must be tamper-evident.
//
// # Overview
//
// The `Manager` type is the entry point. It is initialised with default
// cookie `Options` and, optionally, one or more secret keys. Without secrets
// the manager handles plain cookies only; with secrets the signed helpers
// become available.
//
//   - Set(), Get(), Delete() for plain cookies
//   - SetSigned(), GetSigned() for signed cookies (integrity only)
//
// # Architecture
//
// A signed value is stored as base64(value) "." base64(HMAC-SHA256(value)).
// Multiple secrets are supported to enable key rotation: the first is used
// for writing, the rest for reading.
//
// # Usage
//
//	import "github.com/dmitrymomot/landingkit/pkg/cookie"
//
//	man, err := cookie.New(nil)
//	if err != nil { log.Fatal(err) }
//
//	http.HandleFunc("/theme", func(w http.ResponseWriter, r *http.Request) {
//	    _ = man.Set(w, "theme", "dark")
//	})
//
// # Configuration
//
// The `Config` struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env. Only non-zero fields are applied.
//
//	var cfg cookie.Config
//	_ = env.Parse(&cfg)
//	man, _ := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Package-level sentinel errors are returned for common failure scenarios
// such as `ErrCookieNotFound` and `ErrInvalidSignature` so callers can use
// `errors.Is`.
package cookie
