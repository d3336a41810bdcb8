package api

import "context"

const (
	rolesEntity = "roles"
	rolesPath   = "/roles"
)

// Role is one of the fixed permission levels known to the backend.
type Role struct {
	ID   int64  `json:"id_rol"`
	Name string `json:"nombre_rol"`
}

// Roles lists the known roles. Roles are read-only on the backend, so this
// is the entity's only operation.
func (s *Service) Roles(ctx context.Context) ([]Role, error) {
	return list[Role](ctx, s, rolesEntity, rolesPath)
}
