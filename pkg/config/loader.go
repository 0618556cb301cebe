package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache   sync.Map // type name -> *entry
	envOnce sync.Once
)

// entry holds the parse result for one configuration type. The once gate
// makes concurrent first loads share a single env.Parse call.
type entry struct {
	once  sync.Once
	value any
	err   error
}

// Load parses environment variables into cfg using the struct's env tags.
// Each configuration type is parsed once per process; later calls receive
// the cached copy even if the environment has changed since. A .env file in
// the working directory, when present, is read before the first parse.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	envOnce.Do(func() {
		// A missing .env file is fine, the process environment still applies.
		_ = godotenv.Load()
	})

	e, _ := cache.LoadOrStore(reflect.TypeFor[T]().String(), new(entry))
	ent := e.(*entry)

	ent.once.Do(func() {
		if err := env.Parse(cfg); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = *cfg // cache a copy so callers cannot mutate it
	})

	if ent.err != nil {
		return ent.err
	}

	*cfg = ent.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
