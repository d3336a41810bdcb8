package api

import "context"

const (
	usersEntity = "usuarios"
	usersPath   = "/usuarios"
)

// User is a staff account (employees and admins log in with these).
type User struct {
	ID           int64  `json:"id_usuario"`
	FirstName    string `json:"nombre"`
	LastName     string `json:"apellidos"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"` // only present on create
	RegisteredAt string `json:"fecha_registro"`
	RoleID       int64  `json:"id_rol"`
}

// UserInput is the creatable subset of User.
type UserInput struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellidos"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    int64  `json:"id_rol"`
}

// Users lists all staff accounts.
func (s *Service) Users(ctx context.Context) ([]User, error) {
	return list[User](ctx, s, usersEntity, usersPath)
}

// User fetches one staff account by id.
func (s *Service) User(ctx context.Context, id int64) (User, error) {
	return get[User](ctx, s, usersEntity, usersPath, id)
}

// CreateUser adds a staff account.
func (s *Service) CreateUser(ctx context.Context, in UserInput) (User, error) {
	return create[User](ctx, s, usersEntity, usersPath, in)
}

// UpdateUser replaces a staff account.
func (s *Service) UpdateUser(ctx context.Context, u User) (User, error) {
	return update[User](ctx, s, usersEntity, usersPath, u.ID, u)
}

// DeleteUser removes a staff account.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return remove(ctx, s, usersEntity, usersPath, id)
}
