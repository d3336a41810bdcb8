package api

import "context"

const (
	purchaseItemsEntity = "compraItem"
	purchaseItemsPath   = "/compraItem"
)

// PurchaseItem is one line of a restocking purchase.
type PurchaseItem struct {
	ID         int64   `json:"id_detalle"`
	PurchaseID int64   `json:"id_compra"`
	SupplyID   int64   `json:"id_insumo"`
	Quantity   Decimal `json:"cantidad"`
	UnitPrice  Decimal `json:"precio_unit"`
}

// PurchaseItemInput is the creatable subset of PurchaseItem.
type PurchaseItemInput struct {
	PurchaseID int64   `json:"id_compra"`
	SupplyID   int64   `json:"id_insumo"`
	Quantity   Decimal `json:"cantidad"`
	UnitPrice  Decimal `json:"precio_unit"`
}

// PurchaseItems lists all purchase lines.
func (s *Service) PurchaseItems(ctx context.Context) ([]PurchaseItem, error) {
	return list[PurchaseItem](ctx, s, purchaseItemsEntity, purchaseItemsPath)
}

// PurchaseItem fetches one purchase line by id.
func (s *Service) PurchaseItem(ctx context.Context, id int64) (PurchaseItem, error) {
	return get[PurchaseItem](ctx, s, purchaseItemsEntity, purchaseItemsPath, id)
}

// CreatePurchaseItem adds a purchase line.
func (s *Service) CreatePurchaseItem(ctx context.Context, in PurchaseItemInput) (PurchaseItem, error) {
	return create[PurchaseItem](ctx, s, purchaseItemsEntity, purchaseItemsPath, in)
}

// UpdatePurchaseItem replaces a purchase line.
func (s *Service) UpdatePurchaseItem(ctx context.Context, it PurchaseItem) (PurchaseItem, error) {
	return update[PurchaseItem](ctx, s, purchaseItemsEntity, purchaseItemsPath, it.ID, it)
}

// DeletePurchaseItem removes a purchase line.
func (s *Service) DeletePurchaseItem(ctx context.Context, id int64) error {
	return remove(ctx, s, purchaseItemsEntity, purchaseItemsPath, id)
}
