// Package cache is the read-through cache behind the remote data services.
// It mirrors the caching model of the original café console: entries have no
// TTL and are dropped only by explicit invalidation after a mutation, at
// which point the next read fetches fresh data. There are no optimistic
// updates.
//
//	products, err := cache.Resolve(ctx, c, "productos", func(ctx context.Context) ([]Product, error) {
//		var out []Product
//		return out, api.Get(ctx, "/productos", &out)
//	})
//
//	// after a successful mutation:
//	c.Invalidate("productos")
package cache
