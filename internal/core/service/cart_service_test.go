package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

type stubCartGateway struct {
	items    []domain.CartItem
	addResp  *domain.CartItem
	updResp  *domain.CartItem
	err      error
	lastAdd  ports.AddCartInput
	loadings []bool // loading flag observed at call time, via observe
	observe  func() bool
}

func (g *stubCartGateway) record() {
	if g.observe != nil {
		g.loadings = append(g.loadings, g.observe())
	}
}

func (g *stubCartGateway) Fetch(_ context.Context) ([]domain.CartItem, error) {
	g.record()
	if g.err != nil {
		return nil, g.err
	}
	return g.items, nil
}

func (g *stubCartGateway) Add(_ context.Context, input ports.AddCartInput) (*domain.CartItem, error) {
	g.record()
	g.lastAdd = input
	if g.err != nil {
		return nil, g.err
	}
	return g.addResp, nil
}

func (g *stubCartGateway) Update(_ context.Context, _, _ int) (*domain.CartItem, error) {
	g.record()
	if g.err != nil {
		return nil, g.err
	}
	return g.updResp, nil
}

func (g *stubCartGateway) Remove(_ context.Context, _ int) error {
	g.record()
	return g.err
}

func (g *stubCartGateway) Clear(_ context.Context) error {
	g.record()
	return g.err
}

func shirtLine(id, qty int, options map[string]string) domain.CartItem {
	return domain.CartItem{
		ID:       id,
		Product:  domain.CartProduct{ID: 11, Name: "셔츠", Price: 20000, PointPrice: 200},
		Quantity: qty,
		Options:  options,
	}
}

func TestCart_FetchCart_ReplacesCache(t *testing.T) {
	gw := &stubCartGateway{items: []domain.CartItem{shirtLine(1, 2, nil)}}
	svc := NewCartService(gw, newMemKV(), discardLogger)

	items, err := svc.FetchCart(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || svc.ItemCount() != 1 {
		t.Fatalf("expected one cached line, got %d", svc.ItemCount())
	}
}

func TestCart_LoadingFlag_SetDuringCallClearedAfter(t *testing.T) {
	gw := &stubCartGateway{}
	svc := NewCartService(gw, newMemKV(), discardLogger)
	gw.observe = svc.Loading

	svc.FetchCart(context.Background())

	if len(gw.loadings) != 1 || !gw.loadings[0] {
		t.Error("loading must be true while the request is in flight")
	}
	if svc.Loading() {
		t.Error("loading must be false after the call returns")
	}
}

func TestCart_LoadingFlag_ClearedOnFailure(t *testing.T) {
	gw := &stubCartGateway{err: errors.New("boom")}
	svc := NewCartService(gw, newMemKV(), discardLogger)

	if _, err := svc.FetchCart(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if svc.Loading() {
		t.Error("loading must be cleared on failure")
	}

	if _, err := svc.AddToCart(context.Background(), 11, 1, nil); err == nil {
		t.Fatal("expected error")
	}
	if svc.Loading() {
		t.Error("loading must be cleared on failure")
	}
}

func TestCart_AddToCart_ServerMergeReplacesLine(t *testing.T) {
	opts := map[string]string{"size": "100"}
	gw := &stubCartGateway{addResp: func() *domain.CartItem { l := shirtLine(1, 2, opts); return &l }()}
	svc := NewCartService(gw, newMemKV(), discardLogger)

	svc.AddToCart(context.Background(), 11, 2, opts)

	// Same product and options: the server merges and returns quantity 5.
	// The cached line must carry the server quantity, not 2+3.
	merged := shirtLine(1, 5, opts)
	gw.addResp = &merged
	svc.AddToCart(context.Background(), 11, 3, opts)

	items := svc.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("cached quantity = %d, want the server's 5", items[0].Quantity)
	}
}

func TestCart_AddToCart_DifferentOptionsAppends(t *testing.T) {
	first := shirtLine(1, 1, map[string]string{"size": "100"})
	gw := &stubCartGateway{addResp: &first}
	svc := NewCartService(gw, newMemKV(), discardLogger)
	svc.AddToCart(context.Background(), 11, 1, first.Options)

	second := shirtLine(2, 1, map[string]string{"size": "105"})
	gw.addResp = &second
	svc.AddToCart(context.Background(), 11, 1, second.Options)

	if svc.ItemCount() != 2 {
		t.Errorf("distinct option sets must be distinct lines, got %d", svc.ItemCount())
	}
}

func TestCart_Totals(t *testing.T) {
	svc := NewCartService(&stubCartGateway{}, newMemKV(), discardLogger)
	sale := shirtLine(1, 2, nil)
	sale.Product.SalePrice = 15000
	regular := shirtLine(2, 1, map[string]string{"size": "95"})
	svc.items = []domain.CartItem{sale, regular}

	// 2 * 15000 (sale price wins) + 1 * 20000.
	if got := svc.TotalAmount(); got != 50000 {
		t.Errorf("TotalAmount = %d, want 50000", got)
	}
	// 3 units * 200 points.
	if got := svc.TotalPoints(); got != 600 {
		t.Errorf("TotalPoints = %d, want 600", got)
	}
}

func TestCart_UpdateRemoveClear(t *testing.T) {
	a := shirtLine(1, 1, nil)
	b := shirtLine(2, 1, map[string]string{"size": "95"})
	gw := &stubCartGateway{}
	svc := NewCartService(gw, newMemKV(), discardLogger)
	svc.items = []domain.CartItem{a, b}

	updated := a
	updated.Quantity = 4
	gw.updResp = &updated
	if _, err := svc.UpdateItem(context.Background(), 1, 4); err != nil {
		t.Fatalf("update: %v", err)
	}
	if svc.Items()[0].Quantity != 4 {
		t.Error("cached line not patched after update")
	}

	if err := svc.Remove(context.Background(), 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if items := svc.Items(); len(items) != 1 || items[0].ID != 2 {
		t.Errorf("expected only line 2 after remove, got %+v", items)
	}

	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if svc.ItemCount() != 0 {
		t.Error("cache must be empty after clear")
	}
}

func TestCart_LocalSnapshotRoundtrip(t *testing.T) {
	kv := newMemKV()
	svc := NewCartService(&stubCartGateway{}, kv, discardLogger)
	svc.items = []domain.CartItem{shirtLine(1, 3, map[string]string{"size": "100"})}

	if err := svc.SaveLocal(); err != nil {
		t.Fatalf("save: %v", err)
	}

	restored := NewCartService(&stubCartGateway{}, kv, discardLogger)
	items, err := restored.LoadLocal()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 3 || items[0].Options["size"] != "100" {
		t.Errorf("restored snapshot = %+v", items)
	}
}

func TestCart_LoadLocal_AbsentSnapshotKeepsCache(t *testing.T) {
	svc := NewCartService(&stubCartGateway{}, newMemKV(), discardLogger)
	svc.items = []domain.CartItem{shirtLine(1, 1, nil)}

	items, err := svc.LoadLocal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Error("absent snapshot must leave the cache untouched")
	}
}
