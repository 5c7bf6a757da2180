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

// UserGateway implements ports.UserGateway over the /users endpoints.
type UserGateway struct {
	client *Client
}

func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

type createUserRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required,min=4"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	Name            string `json:"name"     validate:"required"`
	Phone           string `json:"phone,omitempty"`
	Role            string `json:"role"     validate:"required,oneof=admin general sales_office tailor_company"`
	ServiceNumber   string `json:"service_number" validate:"required"`
	Unit            string `json:"unit,omitempty"`
	SalesOfficeID   *int   `json:"sales_office_id,omitempty"`
	TailorCompanyID *int   `json:"tailor_company_id,omitempty"`
}

// updateUserRequest uses pointers throughout: nil fields are omitted and
// the backend leaves them untouched.
type updateUserRequest struct {
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Role            *string `json:"role,omitempty" validate:"omitempty,oneof=admin general sales_office tailor_company"`
	ServiceNumber   *string `json:"service_number,omitempty"`
	Unit            *string `json:"unit,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
	SalesOfficeID   *int    `json:"sales_office_id,omitempty"`
	TailorCompanyID *int    `json:"tailor_company_id,omitempty"`
}

// List retrieves one page of accounts.
func (g *UserGateway) List(ctx context.Context, query ports.ListUsersQuery) (*ports.UserPage, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Role != "" {
		params.Set("role", query.Role)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}

	var page ports.UserPage
	if err := g.client.do(ctx, http.MethodGet, "users", "/users", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get retrieves a single account.
func (g *UserGateway) Get(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	path := fmt.Sprintf("/users/%d", id)
	if err := g.client.do(ctx, http.MethodGet, "users", path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create registers a new account.
func (g *UserGateway) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	req := createUserRequest{
		Username:        input.Username,
		Password:        input.Password,
		Email:           input.Email,
		Name:            input.Name,
		Phone:           input.Phone,
		Role:            string(input.Role),
		ServiceNumber:   input.ServiceNumber,
		Unit:            input.Unit,
		SalesOfficeID:   input.SalesOfficeID,
		TailorCompanyID: input.TailorCompanyID,
	}
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var user domain.User
	if err := g.client.do(ctx, http.MethodPost, "users", "/users", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial account update.
func (g *UserGateway) Update(ctx context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
	req := updateUserRequest{
		Email:           input.Email,
		Name:            input.Name,
		Phone:           input.Phone,
		Role:            (*string)(input.Role),
		ServiceNumber:   input.ServiceNumber,
		Unit:            input.Unit,
		IsActive:        input.IsActive,
		SalesOfficeID:   input.SalesOfficeID,
		TailorCompanyID: input.TailorCompanyID,
	}
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var user domain.User
	path := fmt.Sprintf("/users/%d", id)
	if err := g.client.do(ctx, http.MethodPut, "users", path, nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes an account.
func (g *UserGateway) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/users/%d", id)
	return g.client.do(ctx, http.MethodDelete, "users", path, nil, nil, nil)
}
