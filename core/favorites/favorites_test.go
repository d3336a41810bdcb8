package favorites_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacafe/cafekit/core/favorites"
	"github.com/lumacafe/cafekit/core/store"
)

func TestSetAdd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		s, err := favorites.New(store.NewMemory())
		require.NoError(t, err)

		require.NoError(t, s.Add(ctx, 5))
		require.NoError(t, s.Add(ctx, 5))

		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Contains(5))
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		s, err := favorites.New(store.NewMemory())
		require.NoError(t, err)

		require.NoError(t, s.Add(ctx, 3))
		require.NoError(t, s.Add(ctx, 1))
		require.NoError(t, s.Add(ctx, 2))
		require.NoError(t, s.Add(ctx, 1))

		assert.Equal(t, []int64{3, 1, 2}, s.IDs())
	})
}

func TestSetRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := favorites.New(store.NewMemory())
	require.NoError(t, err)

	require.NoError(t, s.Add(ctx, 1))
	require.NoError(t, s.Remove(ctx, 1))
	assert.False(t, s.Contains(1))

	// Idempotent: removing again is a no-op.
	require.NoError(t, s.Remove(ctx, 1))
	assert.Equal(t, 0, s.Len())
}

func TestSetContains(t *testing.T) {
	t.Parallel()

	s, err := favorites.New(store.NewMemory())
	require.NoError(t, err)
	assert.False(t, s.Contains(42))
}

func TestSetPersistence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round-trips through the store", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		first, err := favorites.New(st)
		require.NoError(t, err)
		require.NoError(t, first.Add(ctx, 5))
		require.NoError(t, first.Add(ctx, 9))

		second, err := favorites.New(st)
		require.NoError(t, err)
		require.NoError(t, second.Load(ctx))

		assert.Equal(t, []int64{5, 9}, second.IDs())
	})

	t.Run("malformed persisted payload resets to empty", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		require.NoError(t, st.Set(ctx, favorites.Key, []byte(`"not-an-array"`)))

		s, err := favorites.New(st)
		require.NoError(t, err)
		require.NoError(t, s.Load(ctx))

		assert.Equal(t, 0, s.Len())
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := favorites.New(nil)
	assert.ErrorIs(t, err, favorites.ErrNilStore)
}
