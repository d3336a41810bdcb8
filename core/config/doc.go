// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
//	type ClientConfig struct {
//		BaseURL string `env:"API_BASE_URL,required"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
package config
