package api

import "context"

const (
	inventoryEntity = "inventario"
	inventoryPath   = "/inventario"
)

// Supply is one stocked ingredient in the inventory.
type Supply struct {
	ID          int64   `json:"id_insumo"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Available   Decimal `json:"cantidad_disp"`
	Unit        string  `json:"unidad_medida"`
}

// SupplyInput is the creatable subset of Supply.
type SupplyInput struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Available   Decimal `json:"cantidad_disp"`
	Unit        string  `json:"unidad_medida"`
}

// Inventory lists all stocked supplies.
func (s *Service) Inventory(ctx context.Context) ([]Supply, error) {
	return list[Supply](ctx, s, inventoryEntity, inventoryPath)
}

// Supply fetches one supply by id.
func (s *Service) Supply(ctx context.Context, id int64) (Supply, error) {
	return get[Supply](ctx, s, inventoryEntity, inventoryPath, id)
}

// CreateSupply adds a supply to the inventory.
func (s *Service) CreateSupply(ctx context.Context, in SupplyInput) (Supply, error) {
	return create[Supply](ctx, s, inventoryEntity, inventoryPath, in)
}

// UpdateSupply replaces a supply.
func (s *Service) UpdateSupply(ctx context.Context, sup Supply) (Supply, error) {
	return update[Supply](ctx, s, inventoryEntity, inventoryPath, sup.ID, sup)
}

// DeleteSupply removes a supply from the inventory.
func (s *Service) DeleteSupply(ctx context.Context, id int64) error {
	return remove(ctx, s, inventoryEntity, inventoryPath, id)
}
