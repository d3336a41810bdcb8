// Package redis provides a Redis-backed implementation of the client state
// store, for deployments where the same session, cart, and favorites state
// must be visible to more than one process (a kiosk fleet, a support
// console). Keys are namespaced per owner so several customers can share one
// Redis database.
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0"}
//	st, err := redis.Connect(ctx, cfg, redis.WithNamespace("kiosk:42"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer st.Close()
//
// The resulting Store satisfies the same contract as the in-memory and file
// stores, so every state component works against it unchanged.
package redis
