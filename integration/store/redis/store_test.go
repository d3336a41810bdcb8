package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/lumacafe/cafekit/integration/store/redis"

	"github.com/lumacafe/cafekit/core/cart"
	"github.com/lumacafe/cafekit/core/session"
	"github.com/lumacafe/cafekit/core/store"
)

func newTestStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisstore.New(client, "cafekit"), mr
}

func TestConnect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("connects and pings", func(t *testing.T) {
		t.Parallel()

		mr := miniredis.RunT(t)
		st, err := redisstore.Connect(ctx, redisstore.Config{
			ConnectionURL: "redis://" + mr.Addr(),
			Namespace:     "test",
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })

		require.NoError(t, st.Set(ctx, "k", []byte(`1`)))
		raw, err := st.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `1`, string(raw))
	})

	t.Run("empty URL is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := redisstore.Connect(ctx, redisstore.Config{})
		assert.ErrorIs(t, err, redisstore.ErrEmptyConnectionURL)
	})

	t.Run("malformed URL is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := redisstore.Connect(ctx, redisstore.Config{ConnectionURL: "http://nope"})
		assert.ErrorIs(t, err, redisstore.ErrFailedToParseConnString)
	})
}

func TestStoreContract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing key returns store.ErrNotFound", func(t *testing.T) {
		t.Parallel()

		st, _ := newTestStore(t)
		_, err := st.Get(ctx, "accessToken")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set, get, delete round-trip", func(t *testing.T) {
		t.Parallel()

		st, _ := newTestStore(t)
		require.NoError(t, store.SetJSON(ctx, st, "email", "a@b.com"))

		v, err := store.GetJSON[string](ctx, st, "email")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", v)

		require.NoError(t, st.Delete(ctx, "email"))
		_, err = st.Get(ctx, "email")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("keys are namespaced", func(t *testing.T) {
		t.Parallel()

		st, mr := newTestStore(t)
		require.NoError(t, st.Set(ctx, "mi_carrito", []byte(`[]`)))
		assert.True(t, mr.Exists("cafekit:mi_carrito"))
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		t.Parallel()

		st, _ := newTestStore(t)
		_, err := st.Get(ctx, "")
		assert.ErrorIs(t, err, store.ErrEmptyKey)
	})
}

// The state components must work against Redis exactly as they do against
// the in-memory store.
func TestStateComponentsOnRedis(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("cart round-trips", func(t *testing.T) {
		t.Parallel()

		st, _ := newTestStore(t)

		c, err := cart.New(st)
		require.NoError(t, err)
		require.NoError(t, c.Add(ctx, 5, 2))

		reloaded, err := cart.New(st)
		require.NoError(t, err)
		require.NoError(t, reloaded.Load(ctx))
		assert.Equal(t, []cart.Item{{ProductID: 5, Quantity: 2}}, reloaded.Items())
	})

	t.Run("session round-trips", func(t *testing.T) {
		t.Parallel()

		st, _ := newTestStore(t)

		m, err := session.New(st)
		require.NoError(t, err)
		require.NoError(t, m.Login(ctx, "opaque-token",
			session.WithFirstName("Ana"),
			session.WithRefreshToken("refresh-1"),
		))

		reloaded, err := session.New(st)
		require.NoError(t, err)
		require.NoError(t, reloaded.Hydrate(ctx))

		s := reloaded.Current()
		assert.Equal(t, "opaque-token", s.AccessToken)
		assert.Equal(t, "refresh-1", s.RefreshToken)
		assert.Equal(t, "Ana", s.FirstName)
	})
}
