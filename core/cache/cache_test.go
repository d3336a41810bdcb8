package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacafe/cafekit/core/cache"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("fetches on miss and serves from cache afterwards", func(t *testing.T) {
		t.Parallel()

		c := cache.New()
		calls := 0
		fetch := func(context.Context) ([]string, error) {
			calls++
			return []string{"latte"}, nil
		}

		v, err := cache.Resolve(ctx, c, "productos", fetch)
		require.NoError(t, err)
		assert.Equal(t, []string{"latte"}, v)

		v, err = cache.Resolve(ctx, c, "productos", fetch)
		require.NoError(t, err)
		assert.Equal(t, []string{"latte"}, v)
		assert.Equal(t, 1, calls)
	})

	t.Run("fetch errors are returned and not cached", func(t *testing.T) {
		t.Parallel()

		c := cache.New()
		boom := errors.New("boom")
		calls := 0

		_, err := cache.Resolve(ctx, c, "productos", func(context.Context) (int, error) {
			calls++
			return 0, boom
		})
		assert.ErrorIs(t, err, boom)

		v, err := cache.Resolve(ctx, c, "productos", func(context.Context) (int, error) {
			calls++
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.Equal(t, 2, calls)
	})

	t.Run("invalidation forces a refetch", func(t *testing.T) {
		t.Parallel()

		c := cache.New()
		calls := 0
		fetch := func(context.Context) (int, error) {
			calls++
			return calls, nil
		}

		v, err := cache.Resolve(ctx, c, "pedidos", fetch)
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		c.Invalidate("pedidos")

		v, err = cache.Resolve(ctx, c, "pedidos", fetch)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})

	t.Run("type mismatch counts as a miss", func(t *testing.T) {
		t.Parallel()

		c := cache.New()
		_, err := cache.Resolve(ctx, c, "k", func(context.Context) (string, error) {
			return "s", nil
		})
		require.NoError(t, err)

		v, err := cache.Resolve(ctx, c, "k", func(context.Context) (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})
}

func TestInvalidateEntity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.New()

	for _, key := range []string{
		cache.Key("pedidos"),
		cache.Key("pedidos", 1),
		cache.Key("pedidos", 2),
		cache.Key("pedidoItem"),
	} {
		_, err := cache.Resolve(ctx, c, key, func(context.Context) (bool, error) {
			return true, nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 4, c.Len())

	c.InvalidateEntity("pedidos")

	assert.Equal(t, 1, c.Len())
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "productos", cache.Key("productos"))
	assert.Equal(t, "productos/5", cache.Key("productos", 5))
}
