package ports

import (
	"context"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
)

// CreateUserInput carries the data for registering an account.
type CreateUserInput struct {
	Username        string
	Password        string
	Email           string
	Name            string
	Phone           string
	Role            domain.Role
	ServiceNumber   string
	Unit            string
	SalesOfficeID   *int
	TailorCompanyID *int
}

// UpdateUserInput carries a partial account update. Nil fields are omitted
// from the request body and left unchanged by the backend.
type UpdateUserInput struct {
	Email           *string
	Name            *string
	Phone           *string
	Role            *domain.Role
	ServiceNumber   *string
	Unit            *string
	IsActive        *bool
	SalesOfficeID   *int
	TailorCompanyID *int
}

// ListUsersQuery is the parameter set for the user list endpoint.
type ListUsersQuery struct {
	Search   string
	Role     string
	Page     int
	PageSize int
}

// UserPage is the list envelope returned by the user list endpoint. Unlike
// the other list endpoints it echoes the pagination back.
type UserPage struct {
	Items      []domain.User `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// UserGateway wraps the account administration endpoints of the backend.
type UserGateway interface {
	List(ctx context.Context, query ListUsersQuery) (*UserPage, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
