package api

import "context"

const (
	suppliersEntity = "proveedores"
	suppliersPath   = "/proveedores"
)

// Supplier is a purchasing source for inventory supplies.
type Supplier struct {
	ID      int64  `json:"id_proveedor"`
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Address string `json:"direccion"`
	Contact string `json:"contacto"`
}

// SupplierInput is the creatable subset of Supplier.
type SupplierInput struct {
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Address string `json:"direccion"`
	Contact string `json:"contacto"`
}

// Suppliers lists all suppliers.
func (s *Service) Suppliers(ctx context.Context) ([]Supplier, error) {
	return list[Supplier](ctx, s, suppliersEntity, suppliersPath)
}

// Supplier fetches one supplier by id.
func (s *Service) Supplier(ctx context.Context, id int64) (Supplier, error) {
	return get[Supplier](ctx, s, suppliersEntity, suppliersPath, id)
}

// CreateSupplier adds a supplier.
func (s *Service) CreateSupplier(ctx context.Context, in SupplierInput) (Supplier, error) {
	return create[Supplier](ctx, s, suppliersEntity, suppliersPath, in)
}

// UpdateSupplier replaces a supplier.
func (s *Service) UpdateSupplier(ctx context.Context, sup Supplier) (Supplier, error) {
	return update[Supplier](ctx, s, suppliersEntity, suppliersPath, sup.ID, sup)
}

// DeleteSupplier removes a supplier.
func (s *Service) DeleteSupplier(ctx context.Context, id int64) error {
	return remove(ctx, s, suppliersEntity, suppliersPath, id)
}
