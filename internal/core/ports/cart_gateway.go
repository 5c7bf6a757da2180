package ports

import (
	"context"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
)

// AddCartInput carries the data for adding a line to the server cart.
type AddCartInput struct {
	ProductID int
	Quantity  int
	Options   map[string]string
}

// CartGateway wraps the cart endpoints of the backend.
type CartGateway interface {
	Fetch(ctx context.Context) ([]domain.CartItem, error)
	// Add creates or merges a line; the returned item carries the
	// server-side quantity, which wins over any client-side sum.
	Add(ctx context.Context, input AddCartInput) (*domain.CartItem, error)
	Update(ctx context.Context, itemID, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, itemID int) error
	Clear(ctx context.Context) error
}
