// Package client is the single HTTP entry point to the café backend. It
// owns the cross-cutting auth concerns so entity services never repeat them:
//
//   - every outbound request carries "Authorization: Bearer <token>", with the
//     token read from the persistent store directly (not from session memory)
//     so a refresh performed anywhere is picked up immediately;
//   - a 401 response triggers exactly one token-refresh cycle and a single
//     replay of the original request. Concurrent 401s coalesce onto one
//     in-flight refresh call and are all released with its outcome, which
//     prevents a refresh storm when several requests expire together;
//   - a failed refresh is terminal for the session: every waiter receives the
//     refresh error and the configured logout callback fires once.
//
// Non-auth HTTP failures are returned as *Error with the decoded server
// message and are never retried.
//
//	cfg := config.MustLoad[client.Config]()
//	api, err := client.New(cfg, st,
//		client.WithLogoutFunc(func(ctx context.Context) {
//			_ = sessions.Logout(ctx)
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var products []Product
//	err = api.Get(ctx, "/productos", &products)
package client
