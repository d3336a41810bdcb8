package session

import (
	"context"
	"errors"
	"sync"

	"github.com/lumacafe/cafekit/core/store"
)

// Manager is the single source of truth for "who is logged in". It keeps the
// current Session in memory and mirrors every field change to the store.
// Safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	store   store.Store
	current Session
}

// New creates a Manager backed by st. The manager starts empty; call Hydrate
// to restore a persisted session.
func New(st store.Store) (*Manager, error) {
	if st == nil {
		return nil, ErrNilStore
	}
	return &Manager{store: st}, nil
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Hydrate restores the session from the store. Intended to be called once at
// startup. If a stored access token is present its payload is decoded to
// recover the role; a decoded email overwrites the stored one and is
// persisted back. Decode failures are swallowed: the token is kept but role
// and email stay unset.
func (m *Manager) Hydrate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	access, err := store.GetJSON[string](ctx, m.store, KeyAccessToken)
	if err != nil {
		return err
	}
	refresh, err := store.GetJSON[string](ctx, m.store, KeyRefreshToken)
	if err != nil {
		return err
	}
	firstName, err := store.GetJSON[string](ctx, m.store, KeyFirstName)
	if err != nil {
		return err
	}
	lastName, err := store.GetJSON[string](ctx, m.store, KeyLastName)
	if err != nil {
		return err
	}
	email, err := store.GetJSON[string](ctx, m.store, KeyEmail)
	if err != nil {
		return err
	}

	s := Session{
		AccessToken:  access,
		RefreshToken: refresh,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
	}

	if access != "" {
		if claims, err := decodeClaims(access); err == nil {
			s.Role = claims.Role
			if claims.Email != "" {
				s.Email = claims.Email
				if err := store.SetJSON(ctx, m.store, KeyEmail, claims.Email); err != nil {
					return err
				}
			}
		}
	}

	m.current = s
	return nil
}

// loginOptions collects the optional Login arguments.
type loginOptions struct {
	refreshToken string
	firstName    string
	lastName     string
}

// LoginOption is an optional argument to Login.
type LoginOption func(*loginOptions)

// WithRefreshToken persists and sets the refresh token alongside the access
// token.
func WithRefreshToken(token string) LoginOption {
	return func(o *loginOptions) {
		o.refreshToken = token
	}
}

// WithFirstName sets the first name explicitly. An explicit name wins over
// one carried in the token payload.
func WithFirstName(name string) LoginOption {
	return func(o *loginOptions) {
		o.firstName = name
	}
}

// WithLastName sets the last name explicitly. An explicit name wins over one
// carried in the token payload.
func WithLastName(name string) LoginOption {
	return func(o *loginOptions) {
		o.lastName = name
	}
}

// Login replaces the session with the freshly issued credentials. The access
// token is persisted first, then its payload is decoded for role, email, and
// fallback names. An undecodable token degrades role and email to unset but
// still records the token and any explicit names.
func (m *Manager) Login(ctx context.Context, accessToken string, opts ...LoginOption) error {
	var o loginOptions
	for _, opt := range opts {
		opt(&o)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := store.SetJSON(ctx, m.store, KeyAccessToken, accessToken); err != nil {
		return err
	}
	m.current.AccessToken = accessToken

	var errs []error
	claims, decodeErr := decodeClaims(accessToken)
	if decodeErr == nil {
		if claims.Role != RoleUnknown {
			m.current.Role = claims.Role
		}
		if claims.Email != "" {
			m.current.Email = claims.Email
			errs = append(errs, store.SetJSON(ctx, m.store, KeyEmail, claims.Email))
		}

		if firstName := firstNonEmpty(o.firstName, claims.FirstName); firstName != "" {
			m.current.FirstName = firstName
			errs = append(errs, store.SetJSON(ctx, m.store, KeyFirstName, firstName))
		}
		if lastName := firstNonEmpty(o.lastName, claims.LastName); lastName != "" {
			m.current.LastName = lastName
			errs = append(errs, store.SetJSON(ctx, m.store, KeyLastName, lastName))
		}
	} else {
		if o.firstName != "" {
			m.current.FirstName = o.firstName
			errs = append(errs, store.SetJSON(ctx, m.store, KeyFirstName, o.firstName))
		}
		if o.lastName != "" {
			m.current.LastName = o.lastName
			errs = append(errs, store.SetJSON(ctx, m.store, KeyLastName, o.lastName))
		}
		m.current.Role = RoleUnknown
		m.current.Email = ""
	}

	if o.refreshToken != "" {
		m.current.RefreshToken = o.refreshToken
		errs = append(errs, store.SetJSON(ctx, m.store, KeyRefreshToken, o.refreshToken))
	}

	return errors.Join(errs...)
}

// Logout clears the session in memory and removes every session key from the
// store.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyFirstName, KeyLastName, KeyEmail} {
		errs = append(errs, m.store.Delete(ctx, key))
	}
	m.current = Session{}

	return errors.Join(errs...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
