package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

// CatalogGateway implements ports.CatalogGateway over the /categories and
// /clothings endpoints.
type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

type categoryRequest struct {
	Name      string `json:"name"       validate:"required"`
	Level     string `json:"level"      validate:"required,oneof=large medium small"`
	ParentID  *int   `json:"parent_id,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type clothingRequest struct {
	Name         string `json:"name"          validate:"required"`
	CategoryID   int    `json:"category_id"   validate:"required,gt=0"`
	ClothingType string `json:"clothing_type" validate:"required,oneof=ready_made custom"`
	ImageURL     string `json:"image_url,omitempty"`
	Description  string `json:"description,omitempty"`
}

func newCategoryRequest(input ports.CategoryInput) categoryRequest {
	return categoryRequest{
		Name:      input.Name,
		Level:     string(input.Level),
		ParentID:  input.ParentID,
		SortOrder: input.SortOrder,
	}
}

func newClothingRequest(input ports.ClothingInput) clothingRequest {
	return clothingRequest{
		Name:         input.Name,
		CategoryID:   input.CategoryID,
		ClothingType: string(input.ClothingType),
		ImageURL:     input.ImageURL,
		Description:  input.Description,
	}
}

// ListCategories retrieves all categories.
func (g *CatalogGateway) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := g.client.do(ctx, http.MethodGet, "categories", "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (g *CatalogGateway) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	req := newCategoryRequest(input)
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var category domain.Category
	if err := g.client.do(ctx, http.MethodPost, "categories", "/categories", nil, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory updates a category.
func (g *CatalogGateway) UpdateCategory(ctx context.Context, id int, input ports.CategoryInput) (*domain.Category, error) {
	req := newCategoryRequest(input)
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var category domain.Category
	path := fmt.Sprintf("/categories/%d", id)
	if err := g.client.do(ctx, http.MethodPut, "categories", path, nil, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category.
func (g *CatalogGateway) DeleteCategory(ctx context.Context, id int) error {
	path := fmt.Sprintf("/categories/%d", id)
	return g.client.do(ctx, http.MethodDelete, "categories", path, nil, nil, nil)
}

// ListClothings retrieves one page of products. Zero-valued filters are
// omitted from the query string.
func (g *CatalogGateway) ListClothings(ctx context.Context, query ports.ListClothingsQuery) (*ports.ClothingPage, error) {
	params := url.Values{}
	f := query.Filters
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Type != "" {
		params.Set("type", f.Type)
	}
	if f.Size != "" {
		params.Set("size", f.Size)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}

	var page ports.ClothingPage
	if err := g.client.do(ctx, http.MethodGet, "clothings", "/clothings", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetClothing retrieves a single product with its specs.
func (g *CatalogGateway) GetClothing(ctx context.Context, id int) (*domain.Clothing, error) {
	var clothing domain.Clothing
	path := fmt.Sprintf("/clothings/%d", id)
	if err := g.client.do(ctx, http.MethodGet, "clothings", path, nil, nil, &clothing); err != nil {
		return nil, err
	}
	return &clothing, nil
}

// CreateClothing creates a product.
func (g *CatalogGateway) CreateClothing(ctx context.Context, input ports.ClothingInput) (*domain.Clothing, error) {
	req := newClothingRequest(input)
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var clothing domain.Clothing
	if err := g.client.do(ctx, http.MethodPost, "clothings", "/clothings", nil, req, &clothing); err != nil {
		return nil, err
	}
	return &clothing, nil
}

// UpdateClothing updates a product.
func (g *CatalogGateway) UpdateClothing(ctx context.Context, id int, input ports.ClothingInput) (*domain.Clothing, error) {
	req := newClothingRequest(input)
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var clothing domain.Clothing
	path := fmt.Sprintf("/clothings/%d", id)
	if err := g.client.do(ctx, http.MethodPut, "clothings", path, nil, req, &clothing); err != nil {
		return nil, err
	}
	return &clothing, nil
}

// DeleteClothing deletes a product.
func (g *CatalogGateway) DeleteClothing(ctx context.Context, id int) error {
	path := fmt.Sprintf("/clothings/%d", id)
	return g.client.do(ctx, http.MethodDelete, "clothings", path, nil, nil, nil)
}
