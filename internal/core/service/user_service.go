package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

const defaultUserPageSize = 10

// UserService caches one page of accounts for the admin views. Unlike the
// other stores its pagination is overwritten from the response envelope,
// which echoes page, page size, and total pages back.
type UserService struct {
	gateway ports.UserGateway
	log     zerolog.Logger

	mu         sync.RWMutex
	users      []domain.User
	current    *domain.User
	loading    bool
	pagination Pagination
}

func NewUserService(gateway ports.UserGateway, log zerolog.Logger) *UserService {
	return &UserService{
		gateway:    gateway,
		log:        log,
		pagination: Pagination{Page: 1, PageSize: defaultUserPageSize},
	}
}

// Loading reports whether a user request is outstanding.
func (s *UserService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Users returns a copy of the cached account page.
func (s *UserService) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Current returns a copy of the last individually fetched account.
func (s *UserService) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Pagination returns the current list window.
func (s *UserService) Pagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

// SetPage moves the list window; the next FetchUsers call sends it.
func (s *UserService) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.pagination.Page = page
}

// FetchUsers retrieves one page of accounts. Zero-valued query fields fall
// back to the stored pagination; the response envelope overwrites it.
func (s *UserService) FetchUsers(ctx context.Context, query ports.ListUsersQuery) (*ports.UserPage, error) {
	s.begin()
	defer s.end()

	s.mu.RLock()
	if query.Page == 0 {
		query.Page = s.pagination.Page
	}
	if query.PageSize == 0 {
		query.PageSize = s.pagination.PageSize
	}
	s.mu.RUnlock()

	page, err := s.gateway.List(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.users = page.Items
	s.pagination = Pagination{
		Page:       orDefault(page.Page, query.Page),
		PageSize:   orDefault(page.PageSize, query.PageSize),
		Total:      page.Total,
		TotalPages: orDefault(page.TotalPages, 1),
	}
	s.mu.Unlock()
	return page, nil
}

// FetchUser retrieves a single account and caches it as current.
func (s *UserService) FetchUser(ctx context.Context, id int) (*domain.User, error) {
	s.begin()
	defer s.end()

	user, err := s.gateway.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return user, nil
}

// CreateUser registers an account and appends it to the cached page.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	s.begin()
	defer s.end()

	user, err := s.gateway.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.users = append(s.users, *user)
	s.mu.Unlock()

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

// UpdateUser applies a partial update and patches the cached entry.
func (s *UserService) UpdateUser(ctx context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
	s.begin()
	defer s.end()

	user, err := s.gateway.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = *user
			break
		}
	}
	s.mu.Unlock()
	return user, nil
}

// DeleteUser removes an account and drops the cached entry.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	s.begin()
	defer s.end()

	if err := s.gateway.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	s.mu.Unlock()
	return nil
}

// Reset drops all cached state, e.g. when the admin leaves the user views.
func (s *UserService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.current = nil
	s.pagination = Pagination{Page: 1, PageSize: defaultUserPageSize}
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func (s *UserService) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

func (s *UserService) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
