package api

import "context"

const (
	categoriesEntity = "categorias"
	categoriesPath   = "/categorias"
)

// Category groups catalog items.
type Category struct {
	ID          int64  `json:"id_categoria"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// CategoryInput is the creatable subset of Category.
type CategoryInput struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// Categories lists all categories.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return list[Category](ctx, s, categoriesEntity, categoriesPath)
}

// Category fetches one category by id.
func (s *Service) Category(ctx context.Context, id int64) (Category, error) {
	return get[Category](ctx, s, categoriesEntity, categoriesPath, id)
}

// CreateCategory adds a category.
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	return create[Category](ctx, s, categoriesEntity, categoriesPath, in)
}

// UpdateCategory replaces a category.
func (s *Service) UpdateCategory(ctx context.Context, c Category) (Category, error) {
	return update[Category](ctx, s, categoriesEntity, categoriesPath, c.ID, c)
}

// DeleteCategory removes a category.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return remove(ctx, s, categoriesEntity, categoriesPath, id)
}
