// Package session holds the client-side identity state: access and refresh
// tokens, the role decoded from the access token, and the signed-in user's
// name and email. One Manager instance is shared by reference across the
// application; consumers read snapshots via Current and mutate state only
// through Hydrate, Login, and Logout.
//
// The role and email are derived by base64-decoding the access token's
// payload segment without verifying its signature; the backend is the only
// party that validates tokens, the client merely mirrors what it was handed.
// A malformed token is not an error: role and email degrade to their zero
// values and the session stays usable.
//
// Every field change is mirrored synchronously to the configured store, so a
// restarted process can Hydrate back into the same session.
//
//	manager, err := session.New(st)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := manager.Hydrate(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	err = manager.Login(ctx, tokens.AccessToken,
//		session.WithRefreshToken(tokens.RefreshToken))
package session
