package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

// CartService caches the server-side cart. It also offers a durable
// client-only snapshot, independent of the server path; the two are never
// reconciled automatically.
type CartService struct {
	gateway ports.CartGateway
	store   ports.KeyValue
	log     zerolog.Logger

	mu      sync.RWMutex
	items   []domain.CartItem
	loading bool
}

func NewCartService(gateway ports.CartGateway, store ports.KeyValue, log zerolog.Logger) *CartService {
	return &CartService{gateway: gateway, store: store, log: log}
}

// Loading reports whether a cart request is outstanding.
func (s *CartService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Items returns a copy of the cached cart lines.
func (s *CartService) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount returns the number of cart lines (not the unit total).
func (s *CartService) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// TotalAmount is the money total: effective unit price times quantity,
// summed over all lines.
func (s *CartService) TotalAmount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.items {
		total += item.UnitAmount() * item.Quantity
	}
	return total
}

// TotalPoints is the point total over all lines.
func (s *CartService) TotalPoints() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.items {
		total += item.Product.PointPrice * item.Quantity
	}
	return total
}

// FetchCart replaces the cached lines with the server cart.
func (s *CartService) FetchCart(ctx context.Context) ([]domain.CartItem, error) {
	s.begin()
	defer s.end()

	items, err := s.gateway.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return items, nil
}

// AddToCart adds quantity of a product to the cart. When the server merges
// the addition into an existing line, the returned line replaces the
// cached one; the server quantity wins over any client-side sum.
func (s *CartService) AddToCart(ctx context.Context, productID, quantity int, options map[string]string) (*domain.CartItem, error) {
	s.begin()
	defer s.end()

	item, err := s.gateway.Add(ctx, ports.AddCartInput{
		ProductID: productID,
		Quantity:  quantity,
		Options:   options,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.items[i].SameLine(*item) {
			s.items[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		s.items = append(s.items, *item)
	}
	s.mu.Unlock()
	return item, nil
}

// UpdateItem changes a line's quantity and patches the cached copy.
func (s *CartService) UpdateItem(ctx context.Context, itemID, quantity int) (*domain.CartItem, error) {
	s.begin()
	defer s.end()

	item, err := s.gateway.Update(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i] = *item
			break
		}
	}
	s.mu.Unlock()
	return item, nil
}

// Remove deletes a line on the server and drops the cached copy.
func (s *CartService) Remove(ctx context.Context, itemID int) error {
	s.begin()
	defer s.end()

	if err := s.gateway.Remove(ctx, itemID); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

// Clear empties the cart on the server and locally.
func (s *CartService) Clear(ctx context.Context) error {
	s.begin()
	defer s.end()

	if err := s.gateway.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	return nil
}

// LoadLocal replaces the cached lines with the durable client-only
// snapshot. An absent snapshot leaves the cache untouched.
func (s *CartService) LoadLocal() ([]domain.CartItem, error) {
	raw, ok := s.store.Get(ports.StorageKeyCart)
	if ok {
		var items []domain.CartItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.items = items
		s.mu.Unlock()
	}
	return s.Items(), nil
}

// SaveLocal writes the cached lines to the durable snapshot.
func (s *CartService) SaveLocal() error {
	s.mu.RLock()
	raw, err := json.Marshal(s.items)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	return s.store.Set(ports.StorageKeyCart, string(raw))
}

func (s *CartService) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

func (s *CartService) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
