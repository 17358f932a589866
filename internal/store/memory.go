// internal/store/memory.go
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Neha-Singh-j/E-commerce/internal/apperrors"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
)

// MemoryStore keeps everything in process memory behind one mutex. It backs
// the test suite and local development without a database. Atomic does not
// roll back on failure; callers that need rollback semantics run against the
// GORM store.
type MemoryStore struct {
	mu        sync.RWMutex
	products  map[uuid.UUID]models.Product
	users     map[uuid.UUID]models.User
	carts     []models.CartItem
	wishlists []models.WishlistItem
	reviews   []models.Review
	orders    []models.Order
	seq       int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[uuid.UUID]models.Product),
		users:    make(map[uuid.UUID]models.User),
	}
}

func (m *MemoryStore) Products() ProductStore   { return (*memProductStore)(m) }
func (m *MemoryStore) Users() UserStore         { return (*memUserStore)(m) }
func (m *MemoryStore) Carts() CartStore         { return (*memCartStore)(m) }
func (m *MemoryStore) Wishlists() WishlistStore { return (*memWishlistStore)(m) }
func (m *MemoryStore) Reviews() ReviewStore     { return (*memReviewStore)(m) }
func (m *MemoryStore) Orders() OrderStore       { return (*memOrderStore)(m) }

func (m *MemoryStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return fn(m)
}

// stamp fills in the identity and timestamps GORM would otherwise assign.
// The sequence counter keeps creation order strict even within one clock tick.
func (m *MemoryStore) stamp(base *models.BaseModel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	m.seq++
	now := time.Now().Add(time.Duration(m.seq) * time.Nanosecond)
	base.CreatedAt = now
	base.UpdatedAt = now
}

// Products

type memProductStore MemoryStore

func (m *memProductStore) Create(ctx context.Context, product *models.Product) error {
	(*MemoryStore)(m).stamp(&product.BaseModel)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = *product
	return nil
}

func (m *memProductStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[id]
	if !ok {
		return nil, apperrors.NotFound("product")
	}
	return &product, nil
}

func (m *memProductStore) Update(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.products[product.ID]
	if !ok {
		return apperrors.NotFound("product")
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Category = product.Category
	existing.Price = product.Price
	existing.Stock = product.Stock
	existing.ImageURL = product.ImageURL
	existing.Images = product.Images
	existing.UpdatedAt = time.Now()
	m.products[product.ID] = existing
	return nil
}

func (m *memProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return apperrors.NotFound("product")
	}
	delete(m.products, id)
	return nil
}

func (m *memProductStore) Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []models.Product
	for _, p := range m.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.AuthorID != nil && p.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.InStock && p.Stock <= 0 {
			continue
		}
		matched = append(matched, p)
	}

	asc := filter.Order == "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch filter.Sort {
		case "price":
			less = matched[i].Price < matched[j].Price
		case "name":
			less = matched[i].Name < matched[j].Name
		case "rating":
			less = matched[i].Rating < matched[j].Rating
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	total := int64(len(matched))
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (m *memProductStore) Categories(ctx context.Context) ([]CategoryCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	byName := make(map[string]int64)
	for _, p := range m.products {
		if p.Category != "" {
			byName[p.Category]++
		}
	}
	counts := make([]CategoryCount, 0, len(byName))
	for category, count := range byName {
		counts = append(counts, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Category < counts[j].Category
	})
	return counts, nil
}

func (m *memProductStore) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return apperrors.NotFound("product")
	}
	if product.Stock+delta < 0 {
		return apperrors.ErrInsufficientStock
	}
	product.Stock += delta
	product.UpdatedAt = time.Now()
	m.products[id] = product
	return nil
}

func (m *memProductStore) SetRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return apperrors.NotFound("product")
	}
	product.Rating = rating
	product.ReviewCount = reviewCount
	m.products[id] = product
	return nil
}

// Users

type memUserStore MemoryStore

func (m *memUserStore) Create(ctx context.Context, user *models.User) error {
	(*MemoryStore)(m).stamp(&user.BaseModel)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = *user
	return nil
}

func (m *memUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	return &user, nil
}

func (m *memUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (m *memUserStore) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (m *memUserStore) Update(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return apperrors.NotFound("user")
	}
	user.UpdatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

// Carts

type memCartStore MemoryStore

func (m *memCartStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []models.CartItem
	for _, item := range m.carts {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *memCartStore) Get(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.carts {
		if item.UserID == userID && item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, apperrors.NotFound("cart item")
}

func (m *memCartStore) Save(ctx context.Context, item *models.CartItem) error {
	if item.ID == uuid.Nil {
		(*MemoryStore)(m).stamp(&item.BaseModel)
		m.mu.Lock()
		defer m.mu.Unlock()
		m.carts = append(m.carts, *item)
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.carts {
		if m.carts[i].ID == item.ID {
			m.carts[i].Quantity = item.Quantity
			m.carts[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return apperrors.NotFound("cart item")
}

func (m *memCartStore) Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// First match only.
	for i, item := range m.carts {
		if item.UserID == userID && item.ProductID == productID {
			m.carts = append(m.carts[:i], m.carts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memCartStore) Clear(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.carts[:0]
	for _, item := range m.carts {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	m.carts = kept
	return nil
}

// Wishlists

type memWishlistStore MemoryStore

func (m *memWishlistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []models.WishlistItem
	for _, item := range m.wishlists {
		if item.UserID == userID {
			if product, ok := m.products[item.ProductID]; ok {
				item.Product = product
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *memWishlistStore) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.wishlists {
		if item.UserID == userID && item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memWishlistStore) Add(ctx context.Context, item *models.WishlistItem) error {
	(*MemoryStore)(m).stamp(&item.BaseModel)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wishlists = append(m.wishlists, *item)
	return nil
}

func (m *memWishlistStore) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.wishlists {
		if item.UserID == userID && item.ProductID == productID {
			m.wishlists = append(m.wishlists[:i], m.wishlists[i+1:]...)
			return nil
		}
	}
	return nil
}

// Reviews

type memReviewStore MemoryStore

func (m *memReviewStore) Create(ctx context.Context, review *models.Review) error {
	(*MemoryStore)(m).stamp(&review.BaseModel)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memReviewStore) GetByAuthorAndProduct(ctx context.Context, authorID, productID uuid.UUID) (*models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, review := range m.reviews {
		if review.AuthorID == authorID && review.ProductID == productID {
			found := review
			return &found, nil
		}
	}
	return nil, apperrors.NotFound("review")
}

func (m *memReviewStore) FindByProduct(ctx context.Context, productID uuid.UUID, offset, limit int) ([]models.Review, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []models.Review
	for _, review := range m.reviews {
		if review.ProductID == productID {
			matched = append(matched, review)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if offset > 0 {
		if offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *memReviewStore) DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	kept := m.reviews[:0]
	for _, review := range m.reviews {
		if review.ProductID == productID {
			deleted++
			continue
		}
		kept = append(kept, review)
	}
	m.reviews = kept
	return deleted, nil
}

// Orders

type memOrderStore MemoryStore

func (m *memOrderStore) Create(ctx context.Context, order *models.Order) error {
	(*MemoryStore)(m).stamp(&order.BaseModel)
	for i := range order.Items {
		(*MemoryStore)(m).stamp(&order.Items[i].BaseModel)
		order.Items[i].OrderID = order.ID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, *order)
	return nil
}

func (m *memOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, order := range m.orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}
	return nil, apperrors.NotFound("order")
}

func (m *memOrderStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var orders []models.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
