package ports

import (
	"context"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
)

// CategoryInput carries the data for creating or updating a category.
type CategoryInput struct {
	Name      string
	Level     domain.CategoryLevel
	ParentID  *int
	SortOrder int
}

// ClothingInput carries the data for creating or updating a product.
type ClothingInput struct {
	Name         string
	CategoryID   int
	ClothingType domain.ClothingType
	ImageURL     string
	Description  string
}

// ClothingFilters are the client-side filter fields merged into every
// product list request. Zero values are omitted from the query string.
type ClothingFilters struct {
	Category string
	Search   string
	Type     string
	Size     string
}

// ListClothingsQuery is the full parameter set for the product list endpoint.
type ListClothingsQuery struct {
	Filters  ClothingFilters
	Page     int
	PageSize int
}

// ClothingPage is the list envelope returned by the product list endpoint.
type ClothingPage struct {
	Items []domain.Clothing `json:"items"`
	Total int               `json:"total"`
}

// CatalogGateway wraps the category and product endpoints of the backend.
type CatalogGateway interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, input CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListClothings(ctx context.Context, query ListClothingsQuery) (*ClothingPage, error)
	GetClothing(ctx context.Context, id int) (*domain.Clothing, error)
	CreateClothing(ctx context.Context, input ClothingInput) (*domain.Clothing, error)
	UpdateClothing(ctx context.Context, id int, input ClothingInput) (*domain.Clothing, error)
	DeleteClothing(ctx context.Context, id int) error
}
