// internal/store/store.go
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Neha-Singh-j/E-commerce/internal/models"
)

// ProductFilter narrows and orders catalog queries. Sort must already be
// validated against a whitelist by the caller.
type ProductFilter struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	AuthorID *uuid.UUID
	InStock  bool
	Sort     string
	Order    string
	Offset   int
	Limit    int
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	// AdjustStock atomically applies delta to the product's stock. It fails
	// with ErrInsufficientStock when the result would drop below zero.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
	// SetRating overwrites the denormalized review aggregate.
	SetRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int64) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type CartStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Get(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error)
	Save(ctx context.Context, item *models.CartItem) error
	// Delete removes at most one matching entry and reports whether a row
	// was actually removed.
	Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type WishlistStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Add(ctx context.Context, item *models.WishlistItem) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	GetByAuthorAndProduct(ctx context.Context, authorID, productID uuid.UUID) (*models.Review, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, offset, limit int) ([]models.Review, int64, error)
	// DeleteByProduct removes every review attached to the product and
	// returns how many rows went away.
	DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

// Store is the persistence contract the workflow layer is written against:
// find-by-identifier, find-by-filter, create, update, delete per collection,
// plus a transactional boundary for the sequences that touch more than one
// collection (checkout, review creation, product delete cascade).
type Store interface {
	Products() ProductStore
	Users() UserStore
	Carts() CartStore
	Wishlists() WishlistStore
	Reviews() ReviewStore
	Orders() OrderStore

	// Atomic runs fn against a store whose writes commit together or not at
	// all. Nested Atomic calls join the enclosing transaction.
	Atomic(ctx context.Context, fn func(Store) error) error
}
