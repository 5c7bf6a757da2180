package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

const defaultProductPageSize = 12

// CatalogService caches the category list and one page of products, along
// with the filter and pagination state merged into every product fetch.
type CatalogService struct {
	gateway ports.CatalogGateway
	log     zerolog.Logger

	mu         sync.RWMutex
	categories []domain.Category
	products   []domain.Clothing
	current    *domain.Clothing
	loading    bool
	pagination Pagination
	filters    ports.ClothingFilters
}

func NewCatalogService(gateway ports.CatalogGateway, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		gateway:    gateway,
		log:        log,
		pagination: Pagination{Page: 1, PageSize: defaultProductPageSize},
	}
}

// Loading reports whether a catalog request is outstanding.
func (s *CatalogService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Categories returns a copy of the cached category list.
func (s *CatalogService) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Products returns a copy of the cached product page.
func (s *CatalogService) Products() []domain.Clothing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Clothing, len(s.products))
	copy(out, s.products)
	return out
}

// Current returns a copy of the last individually fetched product.
func (s *CatalogService) Current() *domain.Clothing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Pagination returns the current list window.
func (s *CatalogService) Pagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

// Filters returns the active filter set.
func (s *CatalogService) Filters() ports.ClothingFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetFilters replaces the filter set and rewinds to the first page.
func (s *CatalogService) SetFilters(filters ports.ClothingFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
	s.pagination.Page = 1
}

// ResetFilters clears all filters and rewinds to the first page.
func (s *CatalogService) ResetFilters() {
	s.SetFilters(ports.ClothingFilters{})
}

// SetPage moves the list window; the next FetchProducts call sends it.
func (s *CatalogService) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.pagination.Page = page
}

// FetchCategories replaces the cached category list. The category list is
// small and unpaginated, so it does not touch the loading flag — mirrors
// the product/category split of the views consuming it.
func (s *CatalogService) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.gateway.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return categories, nil
}

// CreateCategory creates a category and appends it to the cache.
func (s *CatalogService) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	s.begin()
	defer s.end()

	category, err := s.gateway.CreateCategory(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.categories = append(s.categories, *category)
	s.mu.Unlock()
	return category, nil
}

// UpdateCategory updates a category and patches the cached entry.
func (s *CatalogService) UpdateCategory(ctx context.Context, id int, input ports.CategoryInput) (*domain.Category, error) {
	s.begin()
	defer s.end()

	category, err := s.gateway.UpdateCategory(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i] = *category
			break
		}
	}
	s.mu.Unlock()
	return category, nil
}

// DeleteCategory deletes a category and drops the cached entry.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	s.begin()
	defer s.end()

	if err := s.gateway.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.mu.Unlock()
	return nil
}

// FetchProducts retrieves one page of products. The stored filters and
// pagination are merged with overrides for this request only; non-zero
// override fields win. The response overwrites the cached page and total.
func (s *CatalogService) FetchProducts(ctx context.Context, overrides ports.ClothingFilters) (*ports.ClothingPage, error) {
	s.begin()
	defer s.end()

	s.mu.RLock()
	query := ports.ListClothingsQuery{
		Filters:  mergeClothingFilters(s.filters, overrides),
		Page:     s.pagination.Page,
		PageSize: s.pagination.PageSize,
	}
	s.mu.RUnlock()

	page, err := s.gateway.ListClothings(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.products = page.Items
	s.pagination.Total = page.Total
	s.mu.Unlock()
	return page, nil
}

// FetchProduct retrieves a single product and caches it as current.
func (s *CatalogService) FetchProduct(ctx context.Context, id int) (*domain.Clothing, error) {
	s.begin()
	defer s.end()

	clothing, err := s.gateway.GetClothing(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = clothing
	s.mu.Unlock()
	return clothing, nil
}

// CreateProduct creates a product and appends it to the cached page.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.ClothingInput) (*domain.Clothing, error) {
	s.begin()
	defer s.end()

	clothing, err := s.gateway.CreateClothing(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.products = append(s.products, *clothing)
	s.mu.Unlock()
	return clothing, nil
}

// UpdateProduct updates a product and patches the cached entry.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int, input ports.ClothingInput) (*domain.Clothing, error) {
	s.begin()
	defer s.end()

	clothing, err := s.gateway.UpdateClothing(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = *clothing
			break
		}
	}
	s.mu.Unlock()
	return clothing, nil
}

// DeleteProduct deletes a product and drops the cached entry.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	s.begin()
	defer s.end()

	if err := s.gateway.DeleteClothing(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()
	return nil
}

func mergeClothingFilters(base, overrides ports.ClothingFilters) ports.ClothingFilters {
	if overrides.Category != "" {
		base.Category = overrides.Category
	}
	if overrides.Search != "" {
		base.Search = overrides.Search
	}
	if overrides.Type != "" {
		base.Type = overrides.Type
	}
	if overrides.Size != "" {
		base.Size = overrides.Size
	}
	return base
}

func (s *CatalogService) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

func (s *CatalogService) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
