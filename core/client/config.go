package client

import "time"

// Config provides environment-based configuration for the gateway client.
type Config struct {
	// BaseURL is the café backend root, e.g. http://localhost:3100/api.
	BaseURL string `env:"API_BASE_URL,required"`
	// Timeout bounds every request including the refresh call. Zero keeps
	// the historical behavior of waiting indefinitely; callers can still
	// bound individual requests through their context.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"0"`
}
