package domain

// CartProduct is the product summary embedded in a cart line. Prices are
// denormalized from the catalog at the time the line was added; the server
// is the source of truth for them.
type CartProduct struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	SalePrice  int    `json:"sale_price,omitempty"`
	PointPrice int    `json:"point_price,omitempty"`
}

// CartItem is a single line in the cart. Options carries variant choices
// such as size or spec code; two lines with the same product and the same
// options are one logical line and the server merges them.
type CartItem struct {
	ID       int               `json:"id"`
	Product  CartProduct       `json:"product"`
	Quantity int               `json:"quantity"`
	Options  map[string]string `json:"options,omitempty"`
}

// UnitAmount is the effective money price for one unit: the sale price
// when one is set, the regular price otherwise.
func (i CartItem) UnitAmount() int {
	if i.Product.SalePrice > 0 {
		return i.Product.SalePrice
	}
	return i.Product.Price
}

// SameLine reports whether other addresses the same logical cart line:
// identical product and identical option set.
func (i CartItem) SameLine(other CartItem) bool {
	if i.Product.ID != other.Product.ID {
		return false
	}
	if len(i.Options) != len(other.Options) {
		return false
	}
	for k, v := range i.Options {
		if other.Options[k] != v {
			return false
		}
	}
	return true
}
