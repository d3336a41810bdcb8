package api

import "context"

const (
	clientsEntity = "clientes"
	clientsPath   = "/clientes"
)

// Client is a café customer account.
type Client struct {
	ID           int64  `json:"id_cliente"`
	GoogleSub    string `json:"google_sub"`
	FirstName    string `json:"nombre"`
	LastName     string `json:"apellidos"`
	Email        string `json:"email"`
	RegisteredAt string `json:"fecha_registro"`
	RoleID       int64  `json:"id_rol"`
}

// ClientInput is the creatable subset of Client.
type ClientInput struct {
	GoogleSub string `json:"google_sub"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellidos"`
	Email     string `json:"email"`
	RoleID    int64  `json:"id_rol"`
}

// Clients lists all customer accounts.
func (s *Service) Clients(ctx context.Context) ([]Client, error) {
	return list[Client](ctx, s, clientsEntity, clientsPath)
}

// Client fetches one customer account by id.
func (s *Service) Client(ctx context.Context, id int64) (Client, error) {
	return get[Client](ctx, s, clientsEntity, clientsPath, id)
}

// CreateClient adds a customer account.
func (s *Service) CreateClient(ctx context.Context, in ClientInput) (Client, error) {
	return create[Client](ctx, s, clientsEntity, clientsPath, in)
}

// UpdateClient replaces a customer account.
func (s *Service) UpdateClient(ctx context.Context, c Client) (Client, error) {
	return update[Client](ctx, s, clientsEntity, clientsPath, c.ID, c)
}

// DeleteClient removes a customer account.
func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	return remove(ctx, s, clientsEntity, clientsPath, id)
}
