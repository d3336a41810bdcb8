package api

import "context"

const (
	ordersEntity = "pedidos"
	ordersPath   = "/pedidos"
)

// OrderStatus is the lifecycle state of a customer order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pendiente"
	OrderProcessing OrderStatus = "procesando"
	OrderReady      OrderStatus = "listo"
	OrderCancelled  OrderStatus = "cancelado"
)

// Order is a customer order as confirmed by the backend.
type Order struct {
	ID       int64       `json:"id_pedido"`
	ClientID int64       `json:"id_cliente"`
	Date     string      `json:"fecha_pedido"`
	Status   OrderStatus `json:"estado_pedido"`
	Total    Decimal     `json:"total"`
}

// OrderLine is one (product, quantity) pair submitted at checkout, typically
// taken straight from the cart.
type OrderLine struct {
	ProductID int64 `json:"id_producto"`
	Quantity  int   `json:"cantidad"`
}

// CheckoutInput is the composite order-creation request.
type CheckoutInput struct {
	ClientID int64       `json:"id_cliente"`
	Items    []OrderLine `json:"items"`
}

// CheckoutResult carries both the created order and the server-computed
// total.
type CheckoutResult struct {
	Order Order   `json:"pedido"`
	Total Decimal `json:"total"`
}

// Orders lists all customer orders.
func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	return list[Order](ctx, s, ordersEntity, ordersPath)
}

// Order fetches one order by id.
func (s *Service) Order(ctx context.Context, id int64) (Order, error) {
	return get[Order](ctx, s, ordersEntity, ordersPath, id)
}

// CreateOrder submits the composite checkout request: one POST carrying the
// client id and every line item. The backend answers with the created order
// and its computed total; the orders cache is invalidated on success.
func (s *Service) CreateOrder(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	return create[CheckoutResult](ctx, s, ordersEntity, ordersPath, in)
}

// UpdateOrder replaces an order, typically to advance its status. Both the
// list and the order's own cache entry are invalidated.
func (s *Service) UpdateOrder(ctx context.Context, o Order) (Order, error) {
	return update[Order](ctx, s, ordersEntity, ordersPath, o.ID, o)
}

// DeleteOrder removes an order.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	return remove(ctx, s, ordersEntity, ordersPath, id)
}
