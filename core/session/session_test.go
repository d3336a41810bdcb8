package session_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacafe/cafekit/core/session"
	"github.com/lumacafe/cafekit/core/store"
)

// makeToken builds an unsigned JWT-shaped token with the given payload. The
// signature segment is garbage on purpose: the client never verifies it.
func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]any{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	claims, err := json.Marshal(payload)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(claims) + ".sig"
}

func storedString(t *testing.T, st store.Store, key string) string {
	t.Helper()

	v, err := store.GetJSON[string](context.Background(), st, key)
	require.NoError(t, err)
	return v
}

func TestManagerLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("decodes role and email from the token payload", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		m, err := session.New(st)
		require.NoError(t, err)

		token := makeToken(t, map[string]any{"role": 1, "email": "a@b.com"})
		require.NoError(t, m.Login(ctx, token))

		s := m.Current()
		assert.Equal(t, session.RoleCustomer, s.Role)
		assert.Equal(t, "a@b.com", s.Email)
		assert.Equal(t, token, s.AccessToken)

		assert.Equal(t, token, storedString(t, st, session.KeyAccessToken))
		assert.Equal(t, "a@b.com", storedString(t, st, session.KeyEmail))
	})

	t.Run("unparseable token degrades role and email but keeps explicit names", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		m, err := session.New(st)
		require.NoError(t, err)

		require.NoError(t, m.Login(ctx, "not-a-jwt",
			session.WithFirstName("Ana"),
			session.WithLastName("García"),
		))

		s := m.Current()
		assert.Equal(t, session.RoleUnknown, s.Role)
		assert.Empty(t, s.Email)
		assert.Equal(t, "not-a-jwt", s.AccessToken)
		assert.Equal(t, "Ana", s.FirstName)
		assert.Equal(t, "García", s.LastName)

		assert.Equal(t, "Ana", storedString(t, st, session.KeyFirstName))
		assert.Equal(t, "García", storedString(t, st, session.KeyLastName))
	})

	t.Run("explicit names win over payload names", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		m, err := session.New(st)
		require.NoError(t, err)

		token := makeToken(t, map[string]any{
			"role":      2,
			"nombre":    "Payload",
			"apellidos": "Name",
		})
		require.NoError(t, m.Login(ctx, token, session.WithFirstName("Explicit")))

		s := m.Current()
		assert.Equal(t, "Explicit", s.FirstName)
		assert.Equal(t, "Name", s.LastName)
	})

	t.Run("payload names are used when no explicit ones are given", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		m, err := session.New(st)
		require.NoError(t, err)

		token := makeToken(t, map[string]any{"nombre": "Luis", "apellidos": "Pérez"})
		require.NoError(t, m.Login(ctx, token))

		s := m.Current()
		assert.Equal(t, "Luis", s.FirstName)
		assert.Equal(t, "Pérez", s.LastName)
	})

	t.Run("refresh token option persists it", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		m, err := session.New(st)
		require.NoError(t, err)

		token := makeToken(t, map[string]any{"role": 3})
		require.NoError(t, m.Login(ctx, token, session.WithRefreshToken("refresh-1")))

		assert.Equal(t, "refresh-1", m.Current().RefreshToken)
		assert.Equal(t, "refresh-1", storedString(t, st, session.KeyRefreshToken))
	})

	t.Run("payload without role keeps the previous role", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		m, err := session.New(st)
		require.NoError(t, err)

		require.NoError(t, m.Login(ctx, makeToken(t, map[string]any{"role": 2})))
		require.NoError(t, m.Login(ctx, makeToken(t, map[string]any{"email": "x@y.z"})))

		assert.Equal(t, session.RoleEmployee, m.Current().Role)
	})
}

func TestManagerHydrate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("restores a previously persisted session", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()

		first, err := session.New(st)
		require.NoError(t, err)
		token := makeToken(t, map[string]any{"role": 1, "email": "a@b.com"})
		require.NoError(t, first.Login(ctx, token,
			session.WithRefreshToken("refresh-1"),
			session.WithFirstName("Ana"),
		))

		second, err := session.New(st)
		require.NoError(t, err)
		require.NoError(t, second.Hydrate(ctx))

		s := second.Current()
		assert.Equal(t, token, s.AccessToken)
		assert.Equal(t, "refresh-1", s.RefreshToken)
		assert.Equal(t, session.RoleCustomer, s.Role)
		assert.Equal(t, "a@b.com", s.Email)
		assert.Equal(t, "Ana", s.FirstName)
	})

	t.Run("stored token with a bad payload leaves role unset", func(t *testing.T) {
		t.Parallel()

		st := store.NewMemory()
		require.NoError(t, store.SetJSON(ctx, st, session.KeyAccessToken, "garbage"))

		m, err := session.New(st)
		require.NoError(t, err)
		require.NoError(t, m.Hydrate(ctx))

		s := m.Current()
		assert.Equal(t, "garbage", s.AccessToken)
		assert.Equal(t, session.RoleUnknown, s.Role)
	})

	t.Run("empty store hydrates to an empty session", func(t *testing.T) {
		t.Parallel()

		m, err := session.New(store.NewMemory())
		require.NoError(t, err)
		require.NoError(t, m.Hydrate(ctx))

		assert.Equal(t, session.Session{}, m.Current())
		assert.False(t, m.Current().IsAuthenticated())
	})
}

func TestManagerLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	st := store.NewMemory()
	m, err := session.New(st)
	require.NoError(t, err)

	token := makeToken(t, map[string]any{"role": 1, "email": "a@b.com"})
	require.NoError(t, m.Login(ctx, token,
		session.WithRefreshToken("refresh-1"),
		session.WithFirstName("Ana"),
		session.WithLastName("García"),
	))

	require.NoError(t, m.Logout(ctx))

	assert.Equal(t, session.Session{}, m.Current())
	for _, key := range []string{
		session.KeyAccessToken,
		session.KeyRefreshToken,
		session.KeyFirstName,
		session.KeyLastName,
		session.KeyEmail,
	} {
		_, err := st.Get(ctx, key)
		assert.ErrorIs(t, err, store.ErrNotFound, "key %s should be gone", key)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := session.New(nil)
	assert.ErrorIs(t, err, session.ErrNilStore)
}

func TestRoleString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "customer", session.RoleCustomer.String())
	assert.Equal(t, "employee", session.RoleEmployee.String())
	assert.Equal(t, "admin", session.RoleAdmin.String())
	assert.Equal(t, "unknown", session.RoleUnknown.String())
	assert.Equal(t, "unknown", session.Role(42).String())
}
