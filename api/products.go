package api

import "context"

const (
	productsEntity = "productos"
	productsPath   = "/productos"
)

// Product is a catalog item.
type Product struct {
	ID          int64   `json:"id_producto"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       Decimal `json:"precio"`
	CategoryID  int64   `json:"id_categoria"`
	Available   bool    `json:"disponible"`
	ImageURL    string  `json:"imagen_url"`
}

// ProductInput is the creatable subset of Product.
type ProductInput struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       Decimal `json:"precio"`
	CategoryID  int64   `json:"id_categoria"`
	Available   bool    `json:"disponible"`
	ImageURL    string  `json:"imagen_url"`
}

// Products lists the whole catalog.
func (s *Service) Products(ctx context.Context) ([]Product, error) {
	return list[Product](ctx, s, productsEntity, productsPath)
}

// Product fetches one catalog item by id.
func (s *Service) Product(ctx context.Context, id int64) (Product, error) {
	return get[Product](ctx, s, productsEntity, productsPath, id)
}

// CreateProduct adds a catalog item and invalidates the product cache.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	return create[Product](ctx, s, productsEntity, productsPath, in)
}

// UpdateProduct replaces a catalog item and invalidates the product cache.
func (s *Service) UpdateProduct(ctx context.Context, p Product) (Product, error) {
	return update[Product](ctx, s, productsEntity, productsPath, p.ID, p)
}

// DeleteProduct removes a catalog item and invalidates the product cache.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return remove(ctx, s, productsEntity, productsPath, id)
}
