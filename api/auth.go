package api

import "context"

const (
	loginPath    = "/usuarios/login"
	registerPath = "/usuarios/register"
)

// Credentials is the employee login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Tokens is the pair issued by a successful login, ready to be handed to
// session.Manager.Login.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges employee credentials for a token pair. The caller is
// expected to feed the result into the session manager (and to log out on
// failure, matching the original flow).
func (s *Service) Login(ctx context.Context, creds Credentials) (Tokens, error) {
	var tokens Tokens
	if err := s.client.Post(ctx, loginPath, creds, &tokens); err != nil {
		return Tokens{}, err
	}
	return tokens, nil
}

// Register creates a new account through the public registration endpoint.
func (s *Service) Register(ctx context.Context, in UserInput) (User, error) {
	var u User
	if err := s.client.Post(ctx, registerPath, in, &u); err != nil {
		return User{}, err
	}
	return u, nil
}
