// Package store provides durable key/value persistence for client-side state.
//
// It is the single persistence surface shared by the session, cart, and
// favorites packages: each component owns a disjoint set of keys and
// serializes its state as plain JSON values under them. The package ships an
// in-memory implementation for tests, a file-backed implementation that
// survives process restarts, and (under integration/store/redis) a Redis
// implementation for shared deployments.
//
// Basic usage:
//
//	st, err := store.NewFile("~/.cafekit/state.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := store.SetJSON(ctx, st, "mi_carrito", items); err != nil {
//		log.Fatal(err)
//	}
//
//	items, err := store.GetJSON[[]cart.Item](ctx, st, "mi_carrito")
//
// Corrupted or type-mismatched persisted values are deliberately forgiving:
// GetJSON returns the zero value instead of an error, so a bad payload resets
// the owning component to its defaults rather than wedging startup.
package store
