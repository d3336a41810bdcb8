package api

import "context"

const (
	orderItemsEntity = "pedidoItem"
	orderItemsPath   = "/pedidoItem"
)

// OrderItem is one confirmed line of a customer order.
type OrderItem struct {
	ID        int64   `json:"id_detalle"`
	OrderID   int64   `json:"id_pedido"`
	ProductID int64   `json:"id_producto"`
	Quantity  Decimal `json:"cantidad"`
	UnitPrice Decimal `json:"precio_unit"`
}

// OrderItemInput is the creatable subset of OrderItem.
type OrderItemInput struct {
	OrderID   int64   `json:"id_pedido"`
	ProductID int64   `json:"id_producto"`
	Quantity  Decimal `json:"cantidad"`
	UnitPrice Decimal `json:"precio_unit"`
}

// OrderItems lists all order lines.
func (s *Service) OrderItems(ctx context.Context) ([]OrderItem, error) {
	return list[OrderItem](ctx, s, orderItemsEntity, orderItemsPath)
}

// OrderItem fetches one order line by id.
func (s *Service) OrderItem(ctx context.Context, id int64) (OrderItem, error) {
	return get[OrderItem](ctx, s, orderItemsEntity, orderItemsPath, id)
}

// CreateOrderItem adds an order line.
func (s *Service) CreateOrderItem(ctx context.Context, in OrderItemInput) (OrderItem, error) {
	return create[OrderItem](ctx, s, orderItemsEntity, orderItemsPath, in)
}

// UpdateOrderItem replaces an order line.
func (s *Service) UpdateOrderItem(ctx context.Context, it OrderItem) (OrderItem, error) {
	return update[OrderItem](ctx, s, orderItemsEntity, orderItemsPath, it.ID, it)
}

// DeleteOrderItem removes an order line.
func (s *Service) DeleteOrderItem(ctx context.Context, id int64) error {
	return remove(ctx, s, orderItemsEntity, orderItemsPath, id)
}
