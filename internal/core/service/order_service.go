package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

const defaultOrderPageSize = 10

// OrderService caches one page of orders plus the current order, and runs
// the order lifecycle calls (status transition, cancel, refund request).
type OrderService struct {
	gateway ports.OrderGateway
	log     zerolog.Logger

	mu         sync.RWMutex
	orders     []domain.Order
	current    *domain.Order
	loading    bool
	pagination Pagination
	filters    ports.OrderFilters
}

func NewOrderService(gateway ports.OrderGateway, log zerolog.Logger) *OrderService {
	return &OrderService{
		gateway:    gateway,
		log:        log,
		pagination: Pagination{Page: 1, PageSize: defaultOrderPageSize},
	}
}

// Loading reports whether an order request is outstanding.
func (s *OrderService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Orders returns a copy of the cached order page.
func (s *OrderService) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Current returns a copy of the last individually fetched order.
func (s *OrderService) Current() *domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	o := *s.current
	return &o
}

// Pagination returns the current list window.
func (s *OrderService) Pagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

// Filters returns the active filter set.
func (s *OrderService) Filters() ports.OrderFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetFilters replaces the filter set and rewinds to the first page.
func (s *OrderService) SetFilters(filters ports.OrderFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
	s.pagination.Page = 1
}

// ResetFilters clears all filters and rewinds to the first page.
func (s *OrderService) ResetFilters() {
	s.SetFilters(ports.OrderFilters{})
}

// SetPage moves the list window; the next FetchOrders call sends it.
func (s *OrderService) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.pagination.Page = page
}

// FetchOrders retrieves one page of orders, merging stored filters with
// non-zero override fields for this request only.
func (s *OrderService) FetchOrders(ctx context.Context, overrides ports.OrderFilters) (*ports.OrderPage, error) {
	s.begin()
	defer s.end()

	s.mu.RLock()
	query := ports.ListOrdersQuery{
		Filters:  mergeOrderFilters(s.filters, overrides),
		Page:     s.pagination.Page,
		PageSize: s.pagination.PageSize,
	}
	s.mu.RUnlock()

	page, err := s.gateway.List(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = page.Items
	s.pagination.Total = page.Total
	s.mu.Unlock()
	return page, nil
}

// FetchOrder retrieves a single order and caches it as current.
func (s *OrderService) FetchOrder(ctx context.Context, id int) (*domain.Order, error) {
	s.begin()
	defer s.end()

	order, err := s.gateway.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = order
	s.mu.Unlock()
	return order, nil
}

// CreateOrder places an order and prepends it to the cached page, matching
// the newest-first sort the list endpoint uses.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	s.begin()
	defer s.end()

	order, err := s.gateway.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = append([]domain.Order{*order}, s.orders...)
	s.mu.Unlock()

	s.log.Info().Str("order_number", order.OrderNumber).Msg("order created")
	return order, nil
}

// UpdateStatus moves an order to a new status and patches the cached entry.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	s.begin()
	defer s.end()

	order, err := s.gateway.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.patch(order)
	return order, nil
}

// Cancel cancels an order and patches the cached entry.
func (s *OrderService) Cancel(ctx context.Context, id int, reason string) (*domain.Order, error) {
	s.begin()
	defer s.end()

	order, err := s.gateway.Cancel(ctx, id, reason)
	if err != nil {
		return nil, err
	}

	s.patch(order)
	return order, nil
}

// RequestRefund files a refund request and patches the cached entry.
func (s *OrderService) RequestRefund(ctx context.Context, id int, input ports.RefundInput) (*domain.Order, error) {
	s.begin()
	defer s.end()

	order, err := s.gateway.RequestRefund(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.patch(order)
	return order, nil
}

// StatusLabel returns the display label for an order status.
func (s *OrderService) StatusLabel(status domain.OrderStatus) string {
	return status.Label()
}

// patch replaces the cached list entry with the same ID, if present.
func (s *OrderService) patch(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = *order
			break
		}
	}
}

func mergeOrderFilters(base, overrides ports.OrderFilters) ports.OrderFilters {
	if overrides.Status != "" {
		base.Status = overrides.Status
	}
	if overrides.StartDate != "" {
		base.StartDate = overrides.StartDate
	}
	if overrides.EndDate != "" {
		base.EndDate = overrides.EndDate
	}
	if overrides.Search != "" {
		base.Search = overrides.Search
	}
	return base
}

func (s *OrderService) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

func (s *OrderService) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
