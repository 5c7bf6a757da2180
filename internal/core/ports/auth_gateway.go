package ports

import (
	"context"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
)

// AuthGateway wraps the authentication endpoints of the backend.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// Me fetches the profile of the token's owner.
	Me(ctx context.Context) (*domain.User, error)
}
