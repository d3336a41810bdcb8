package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg. The first Load call in the
// process also loads a .env file when one exists. Each configuration type is
// parsed only once; later calls for the same type return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	dotenvOnce.Do(func() {
		// Missing .env files are expected outside local development.
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
