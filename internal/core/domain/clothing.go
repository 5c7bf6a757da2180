package domain

import "time"

// ClothingType distinguishes ready-made stock from tailor-made items.
type ClothingType string

const (
	ClothingReadyMade ClothingType = "ready_made"
	ClothingCustom    ClothingType = "custom"
)

// CategoryLevel is the depth of a category node in the catalog tree.
type CategoryLevel string

const (
	CategoryLarge  CategoryLevel = "large"
	CategoryMedium CategoryLevel = "medium"
	CategorySmall  CategoryLevel = "small"
)

// Category is a catalog category node.
type Category struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Level     CategoryLevel `json:"level"`
	ParentID  *int          `json:"parent_id,omitempty"`
	SortOrder int           `json:"sort_order"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
}

// Spec is one purchasable variant of a clothing item (a size at a price).
// Custom items carry no specs; they are measured per order.
type Spec struct {
	ID         int    `json:"id"`
	ItemID     int    `json:"item_id"`
	SpecCode   string `json:"spec_code"`
	Size       string `json:"size"`
	Price      int    `json:"price"`
	SalePrice  int    `json:"sale_price,omitempty"`
	PointPrice int    `json:"point_price,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// Clothing is a catalog product.
type Clothing struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	CategoryID   int          `json:"category_id"`
	ClothingType ClothingType `json:"clothing_type"`
	ImageURL     string       `json:"image_url,omitempty"`
	Description  string       `json:"description,omitempty"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	Category     *Category    `json:"category,omitempty"`
	Specs        []Spec       `json:"specs,omitempty"`
}
