package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lumacafe/cafekit/core/store"
)

var (
	// ErrFailedToParseConnString is returned when the connection URL is
	// malformed or uses an unsupported scheme.
	ErrFailedToParseConnString = errors.New("redis: failed to parse connection string")
	// ErrNotReady is returned when Redis does not answer the initial ping.
	ErrNotReady = errors.New("redis: not ready")
	// ErrEmptyConnectionURL is returned when no connection URL is provided.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
)

// Config provides environment-based configuration for the Redis store.
type Config struct {
	ConnectionURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	Namespace     string `env:"REDIS_NAMESPACE" envDefault:"cafekit"`
}

// Store implements store.Store on top of Redis. Values live under
// "<namespace>:<key>" with no expiration, matching the persistence semantics
// of the file store.
type Store struct {
	client    *redis.Client
	namespace string
}

// Option configures the Store.
type Option func(*Store)

// WithNamespace overrides the configured key namespace.
func WithNamespace(ns string) Option {
	return func(s *Store) {
		if ns != "" {
			s.namespace = ns
		}
	}
}

// Connect creates a Store and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	redisOpts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	s := &Store{
		client:    redis.NewClient(redisOpts),
		namespace: cfg.Namespace,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.client.Ping(ctx).Err(); err != nil {
		_ = s.client.Close()
		return nil, errors.Join(ErrNotReady, err)
	}
	return s, nil
}

// New wraps an existing Redis client, mainly for tests.
func New(client *redis.Client, namespace string) *Store {
	return &Store{client: client, namespace: namespace}
}

// Get implements store.Store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, store.ErrEmptyKey
	}

	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return raw, nil
}

// Set implements store.Store.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return store.ErrEmptyKey
	}

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Delete implements store.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return store.ErrEmptyKey
	}

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis: delete %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

// Healthcheck returns a probe function that pings Redis.
func (s *Store) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if err := s.client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrNotReady, err)
		}
		return nil
	}
}

func (s *Store) key(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + ":" + key
}
