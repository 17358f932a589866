// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// CartItem is a weak reference into the catalog: the product row may be
// deleted underneath it, and readers must treat a dangling reference as
// absent rather than an error. At most one row exists per (user, product).
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// WishlistItem models the wishlist as a set of product references.
type WishlistItem struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// CartLine is the resolved view of a cart entry: the live product joined in
// at read time with the per-line total derived, never stored.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// CartSummary is the payload handed to the presentation layer.
type CartSummary struct {
	Items       []CartLine `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	TotalItems  int        `json:"total_items"`
}
