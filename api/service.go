package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumacafe/cafekit/core/cache"
	"github.com/lumacafe/cafekit/core/client"
)

// Service bundles the gateway client with the query cache shared by all
// entity operations. One instance serves the whole application.
type Service struct {
	client *client.Client
	cache  *cache.Cache
	log    *slog.Logger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithCache replaces the query cache, mainly to share one across services.
func WithCache(c *cache.Cache) ServiceOption {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithLogger sets the logger for data-service events.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a data service on top of the gateway client.
func NewService(c *client.Client, opts ...ServiceOption) *Service {
	s := &Service{
		client: c,
		cache:  cache.New(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache exposes the underlying query cache, letting callers force refetches.
func (s *Service) Cache() *cache.Cache {
	return s.cache
}

// list fetches all records of an entity through the cache.
func list[T any](ctx context.Context, s *Service, entity, path string) ([]T, error) {
	return cache.Resolve(ctx, s.cache, cache.Key(entity), func(ctx context.Context) ([]T, error) {
		var out []T
		if err := s.client.Get(ctx, path, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// get fetches a single record by id through the cache.
func get[T any](ctx context.Context, s *Service, entity, path string, id int64) (T, error) {
	return cache.Resolve(ctx, s.cache, cache.Key(entity, id), func(ctx context.Context) (T, error) {
		var out T
		if err := s.client.Get(ctx, fmt.Sprintf("%s/%d", path, id), &out); err != nil {
			var zero T
			return zero, err
		}
		return out, nil
	})
}

// create posts a new record and invalidates the entity's cache on success.
func create[T any](ctx context.Context, s *Service, entity, path string, body any) (T, error) {
	var out T
	if err := s.client.Post(ctx, path, body, &out); err != nil {
		var zero T
		return zero, err
	}
	s.cache.InvalidateEntity(entity)
	return out, nil
}

// update puts a record by id and invalidates the entity's cache on success,
// the record's own key included.
func update[T any](ctx context.Context, s *Service, entity, path string, id int64, body any) (T, error) {
	var out T
	if err := s.client.Put(ctx, fmt.Sprintf("%s/%d", path, id), body, &out); err != nil {
		var zero T
		return zero, err
	}
	s.cache.InvalidateEntity(entity)
	return out, nil
}

// remove deletes a record by id and invalidates the entity's cache on
// success.
func remove(ctx context.Context, s *Service, entity, path string, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("%s/%d", path, id)); err != nil {
		return err
	}
	s.cache.InvalidateEntity(entity)
	return nil
}
