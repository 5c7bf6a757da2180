package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

// CartGateway implements ports.CartGateway over the /cart endpoints.
type CartGateway struct {
	client *Client
}

func NewCartGateway(client *Client) *CartGateway {
	return &CartGateway{client: client}
}

type addCartRequest struct {
	ProductID int               `json:"product_id" validate:"required,gt=0"`
	Quantity  int               `json:"quantity"   validate:"required,gt=0"`
	Options   map[string]string `json:"options,omitempty"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// Fetch retrieves the full server-side cart.
func (g *CartGateway) Fetch(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := g.client.do(ctx, http.MethodGet, "cart", "/cart", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add creates or merges a cart line. The server decides whether the line is
// new or merged into an existing one with the same product and options.
func (g *CartGateway) Add(ctx context.Context, input ports.AddCartInput) (*domain.CartItem, error) {
	req := addCartRequest{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Options:   input.Options,
	}
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var item domain.CartItem
	if err := g.client.do(ctx, http.MethodPost, "cart_items", "/cart/items", nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update changes the quantity of an existing line.
func (g *CartGateway) Update(ctx context.Context, itemID, quantity int) (*domain.CartItem, error) {
	req := updateCartRequest{Quantity: quantity}
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var item domain.CartItem
	path := fmt.Sprintf("/cart/items/%d", itemID)
	if err := g.client.do(ctx, http.MethodPut, "cart_items", path, nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove deletes a single line.
func (g *CartGateway) Remove(ctx context.Context, itemID int) error {
	path := fmt.Sprintf("/cart/items/%d", itemID)
	return g.client.do(ctx, http.MethodDelete, "cart_items", path, nil, nil, nil)
}

// Clear deletes the whole cart.
func (g *CartGateway) Clear(ctx context.Context) error {
	return g.client.do(ctx, http.MethodDelete, "cart", "/cart", nil, nil, nil)
}
