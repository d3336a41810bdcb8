package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role is the permission level carried in the access token payload.
type Role int

const (
	// RoleUnknown means no role could be derived from the token.
	RoleUnknown Role = 0
	// RoleCustomer is a regular shop customer.
	RoleCustomer Role = 1
	// RoleEmployee is café staff with back-office access.
	RoleEmployee Role = 2
	// RoleAdmin has full administrative access.
	RoleAdmin Role = 3
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleEmployee:
		return "employee"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Storage keys owned by this package. They are an external contract: the
// gateway client reads KeyAccessToken and KeyRefreshToken directly so that a
// token refresh performed by either side is visible to the other.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyFirstName    = "nombre"
	KeyLastName     = "apellidos"
	KeyEmail        = "email"
)

// Session is a point-in-time snapshot of the identity state. Zero values
// mean "not set".
type Session struct {
	AccessToken  string
	RefreshToken string
	Role         Role
	FirstName    string
	LastName     string
	Email        string
}

// IsAuthenticated reports whether an access token is present.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// tokenClaims is the subset of the access token payload this client consumes.
// All fields are optional.
type tokenClaims struct {
	Role      Role
	Email     string
	FirstName string
	LastName  string
}

// decodeClaims extracts claims from the token's payload segment without any
// signature verification, mirroring the backend's claim names.
func decodeClaims(accessToken string) (tokenClaims, error) {
	var out tokenClaims

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return out, err
	}

	if v, ok := claims["role"].(float64); ok {
		out.Role = Role(v)
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["nombre"].(string); ok {
		out.FirstName = v
	}
	if v, ok := claims["apellidos"].(string); ok {
		out.LastName = v
	}
	return out, nil
}
