package api

import "context"

const (
	purchasesEntity = "compras"
	purchasesPath   = "/compras"
)

// Purchase is a restocking order placed with a supplier.
type Purchase struct {
	ID         int64   `json:"id_compra"`
	SupplierID int64   `json:"id_proveedor"`
	Date       string  `json:"fecha_compra"`
	Total      Decimal `json:"total"`
}

// PurchaseInput is the creatable subset of Purchase; the backend assigns the
// purchase date.
type PurchaseInput struct {
	SupplierID int64   `json:"id_proveedor"`
	Total      Decimal `json:"total"`
}

// Purchases lists all restocking purchases.
func (s *Service) Purchases(ctx context.Context) ([]Purchase, error) {
	return list[Purchase](ctx, s, purchasesEntity, purchasesPath)
}

// Purchase fetches one purchase by id.
func (s *Service) Purchase(ctx context.Context, id int64) (Purchase, error) {
	return get[Purchase](ctx, s, purchasesEntity, purchasesPath, id)
}

// CreatePurchase records a new purchase.
func (s *Service) CreatePurchase(ctx context.Context, in PurchaseInput) (Purchase, error) {
	return create[Purchase](ctx, s, purchasesEntity, purchasesPath, in)
}

// UpdatePurchase replaces a purchase.
func (s *Service) UpdatePurchase(ctx context.Context, p Purchase) (Purchase, error) {
	return update[Purchase](ctx, s, purchasesEntity, purchasesPath, p.ID, p)
}

// DeletePurchase removes a purchase.
func (s *Service) DeletePurchase(ctx context.Context, id int64) error {
	return remove(ctx, s, purchasesEntity, purchasesPath, id)
}
