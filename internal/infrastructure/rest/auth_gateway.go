package rest

import (
	"context"
	"net/http"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
)

// AuthGateway implements ports.AuthGateway over the /auth endpoints.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (string, error) {
	req := loginRequest{Username: username, Password: password}
	if err := validateSchema(req); err != nil {
		return "", err
	}

	var resp loginResponse
	if err := g.client.do(ctx, http.MethodPost, "auth_login", "/auth/login", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Me fetches the profile of the current token's owner.
func (g *AuthGateway) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := g.client.do(ctx, http.MethodGet, "auth_me", "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
