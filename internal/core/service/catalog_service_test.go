package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

type stubCatalogGateway struct {
	categories []domain.Category
	page       *ports.ClothingPage
	clothing   *domain.Clothing
	category   *domain.Category
	err        error

	lastQuery ports.ListClothingsQuery
	listCalls int
}

func (g *stubCatalogGateway) ListCategories(_ context.Context) ([]domain.Category, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.categories, nil
}

func (g *stubCatalogGateway) CreateCategory(_ context.Context, _ ports.CategoryInput) (*domain.Category, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.category, nil
}

func (g *stubCatalogGateway) UpdateCategory(_ context.Context, _ int, _ ports.CategoryInput) (*domain.Category, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.category, nil
}

func (g *stubCatalogGateway) DeleteCategory(_ context.Context, _ int) error { return g.err }

func (g *stubCatalogGateway) ListClothings(_ context.Context, query ports.ListClothingsQuery) (*ports.ClothingPage, error) {
	g.listCalls++
	g.lastQuery = query
	if g.err != nil {
		return nil, g.err
	}
	return g.page, nil
}

func (g *stubCatalogGateway) GetClothing(_ context.Context, _ int) (*domain.Clothing, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.clothing, nil
}

func (g *stubCatalogGateway) CreateClothing(_ context.Context, _ ports.ClothingInput) (*domain.Clothing, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.clothing, nil
}

func (g *stubCatalogGateway) UpdateClothing(_ context.Context, _ int, _ ports.ClothingInput) (*domain.Clothing, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.clothing, nil
}

func (g *stubCatalogGateway) DeleteClothing(_ context.Context, _ int) error { return g.err }

func emptyClothingPage() *ports.ClothingPage {
	return &ports.ClothingPage{Items: []domain.Clothing{}}
}

func TestCatalog_FetchProducts_SendsStoredFiltersAndPage(t *testing.T) {
	gw := &stubCatalogGateway{page: emptyClothingPage()}
	svc := NewCatalogService(gw, discardLogger)

	svc.SetFilters(ports.ClothingFilters{Category: "uniform", Search: "shirt"})
	svc.SetPage(3)
	if _, err := svc.FetchProducts(context.Background(), ports.ClothingFilters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := gw.lastQuery
	if q.Filters.Category != "uniform" || q.Filters.Search != "shirt" {
		t.Errorf("stored filters not sent: %+v", q.Filters)
	}
	if q.Page != 3 || q.PageSize != defaultProductPageSize {
		t.Errorf("pagination = page %d size %d", q.Page, q.PageSize)
	}
}

func TestCatalog_FetchProducts_OverridesAreOneShot(t *testing.T) {
	gw := &stubCatalogGateway{page: emptyClothingPage()}
	svc := NewCatalogService(gw, discardLogger)
	svc.SetFilters(ports.ClothingFilters{Category: "uniform"})

	svc.FetchProducts(context.Background(), ports.ClothingFilters{Search: "coat"})
	if gw.lastQuery.Filters.Category != "uniform" || gw.lastQuery.Filters.Search != "coat" {
		t.Errorf("override not merged: %+v", gw.lastQuery.Filters)
	}

	// The override must not stick.
	svc.FetchProducts(context.Background(), ports.ClothingFilters{})
	if gw.lastQuery.Filters.Search != "" {
		t.Errorf("override leaked into stored filters: %+v", gw.lastQuery.Filters)
	}
	if svc.Filters().Search != "" {
		t.Error("stored filter state must be untouched by overrides")
	}
}

func TestCatalog_SetFilters_RewindsToFirstPage(t *testing.T) {
	svc := NewCatalogService(&stubCatalogGateway{page: emptyClothingPage()}, discardLogger)

	svc.SetPage(5)
	svc.SetFilters(ports.ClothingFilters{Type: string(domain.ClothingCustom)})

	if svc.Pagination().Page != 1 {
		t.Errorf("page = %d after SetFilters, want 1", svc.Pagination().Page)
	}
}

func TestCatalog_FetchProducts_UpdatesCacheAndTotal(t *testing.T) {
	gw := &stubCatalogGateway{page: &ports.ClothingPage{
		Items: []domain.Clothing{{ID: 1, Name: "근무복 상의"}, {ID: 2, Name: "근무복 하의"}},
		Total: 27,
	}}
	svc := NewCatalogService(gw, discardLogger)

	if _, err := svc.FetchProducts(context.Background(), ports.ClothingFilters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(svc.Products()) != 2 {
		t.Errorf("cached products = %d", len(svc.Products()))
	}
	if svc.Pagination().Total != 27 {
		t.Errorf("total = %d, want 27", svc.Pagination().Total)
	}
}

func TestCatalog_FetchProducts_FailureKeepsCacheAndClearsLoading(t *testing.T) {
	gw := &stubCatalogGateway{page: &ports.ClothingPage{Items: []domain.Clothing{{ID: 1}}, Total: 1}}
	svc := NewCatalogService(gw, discardLogger)
	svc.FetchProducts(context.Background(), ports.ClothingFilters{})

	gw.err = errors.New("boom")
	if _, err := svc.FetchProducts(context.Background(), ports.ClothingFilters{}); err == nil {
		t.Fatal("expected error")
	}
	if svc.Loading() {
		t.Error("loading must be cleared on failure")
	}
	if len(svc.Products()) != 1 {
		t.Error("failed fetch must not clobber the cached page")
	}
}

func TestCatalog_CategoryCRUDPatchesCache(t *testing.T) {
	gw := &stubCatalogGateway{categories: []domain.Category{{ID: 1, Name: "동복"}}}
	svc := NewCatalogService(gw, discardLogger)
	svc.FetchCategories(context.Background())

	gw.category = &domain.Category{ID: 2, Name: "하복", Level: domain.CategoryLarge}
	if _, err := svc.CreateCategory(context.Background(), ports.CategoryInput{Name: "하복", Level: domain.CategoryLarge}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(svc.Categories()) != 2 {
		t.Fatalf("expected appended category, got %d", len(svc.Categories()))
	}

	gw.category = &domain.Category{ID: 1, Name: "동복(수정)"}
	svc.UpdateCategory(context.Background(), 1, ports.CategoryInput{Name: "동복(수정)"})
	if svc.Categories()[0].Name != "동복(수정)" {
		t.Error("cached category not patched after update")
	}

	svc.DeleteCategory(context.Background(), 1)
	if cats := svc.Categories(); len(cats) != 1 || cats[0].ID != 2 {
		t.Errorf("expected only category 2 after delete, got %+v", cats)
	}
}

func TestCatalog_ProductCRUDPatchesCache(t *testing.T) {
	gw := &stubCatalogGateway{page: &ports.ClothingPage{Items: []domain.Clothing{{ID: 1, Name: "코트"}}, Total: 1}}
	svc := NewCatalogService(gw, discardLogger)
	svc.FetchProducts(context.Background(), ports.ClothingFilters{})

	gw.clothing = &domain.Clothing{ID: 1, Name: "코트(수정)"}
	svc.UpdateProduct(context.Background(), 1, ports.ClothingInput{Name: "코트(수정)"})
	if svc.Products()[0].Name != "코트(수정)" {
		t.Error("cached product not patched after update")
	}

	gw.clothing = &domain.Clothing{ID: 9, Name: "점퍼"}
	svc.FetchProduct(context.Background(), 9)
	if cur := svc.Current(); cur == nil || cur.ID != 9 {
		t.Errorf("current = %+v", cur)
	}

	svc.DeleteProduct(context.Background(), 1)
	if len(svc.Products()) != 0 {
		t.Error("cached product not dropped after delete")
	}
}

func TestCatalog_ResetFilters(t *testing.T) {
	svc := NewCatalogService(&stubCatalogGateway{page: emptyClothingPage()}, discardLogger)
	svc.SetFilters(ports.ClothingFilters{Category: "uniform", Size: "100"})
	svc.SetPage(4)

	svc.ResetFilters()

	if svc.Filters() != (ports.ClothingFilters{}) {
		t.Errorf("filters = %+v after reset", svc.Filters())
	}
	if svc.Pagination().Page != 1 {
		t.Errorf("page = %d after reset", svc.Pagination().Page)
	}
}
