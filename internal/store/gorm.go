// internal/store/gorm.go
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Neha-Singh-j/E-commerce/internal/apperrors"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
)

// gormStore backs the Store contract with Postgres via GORM. Within Atomic
// every sub-store shares the transaction handle.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Products() ProductStore   { return (*gormProductStore)(s) }
func (s *gormStore) Users() UserStore         { return (*gormUserStore)(s) }
func (s *gormStore) Carts() CartStore         { return (*gormCartStore)(s) }
func (s *gormStore) Wishlists() WishlistStore { return (*gormWishlistStore)(s) }
func (s *gormStore) Reviews() ReviewStore     { return (*gormReviewStore)(s) }
func (s *gormStore) Orders() OrderStore       { return (*gormOrderStore)(s) }

func (s *gormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// Products

type gormProductStore gormStore

func (s *gormProductStore) Create(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (s *gormProductStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Preload("Author").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product")
		}
		return nil, apperrors.Storage(err)
	}
	return &product, nil
}

func (s *gormProductStore) Update(ctx context.Context, product *models.Product) error {
	result := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"category":    product.Category,
			"price":       product.Price,
			"stock":       product.Stock,
			"image_url":   product.ImageURL,
			"images":      product.Images,
		})
	if result.Error != nil {
		return apperrors.Storage(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("product")
	}
	return nil
}

func (s *gormProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Storage(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("product")
	}
	return nil
}

func (s *gormProductStore) Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{}).Preload("Author")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		searchTerm := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.InStock {
		query = query.Where("stock > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Storage(err)
	}

	sort := filter.Sort
	if sort == "" {
		sort = "created_at"
	}
	order := filter.Order
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	query = query.Order(sort + " " + order)

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, apperrors.Storage(err)
	}
	return products, total, nil
}

func (s *gormProductStore) Categories(ctx context.Context) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := s.db.WithContext(ctx).Model(&models.Product{}).
		Select("category, COUNT(*) as count").
		Where("category <> ''").
		Group("category").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return counts, nil
}

func (s *gormProductStore) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	result := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return apperrors.Storage(result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrInsufficientStock
	}
	return nil
}

func (s *gormProductStore) SetRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int64) error {
	result := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": reviewCount})
	if result.Error != nil {
		return apperrors.Storage(result.Error)
	}
	return nil
}

// Users

type gormUserStore gormStore

func (s *gormUserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (s *gormUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Storage(err)
	}
	return &user, nil
}

func (s *gormUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Storage(err)
	}
	return &user, nil
}

func (s *gormUserStore) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ? OR email = ?", username, email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Storage(err)
	}
	return &user, nil
}

func (s *gormUserStore) Update(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// Carts
//
// Cart and wishlist rows are hard-deleted: their composite unique indexes
// would otherwise collide with soft-deleted leftovers on re-add.

type gormCartStore gormStore

func (s *gormCartStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return items, nil
}

func (s *gormCartStore) Get(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart item")
		}
		return nil, apperrors.Storage(err)
	}
	return &item, nil
}

func (s *gormCartStore) Save(ctx context.Context, item *models.CartItem) error {
	if item.ID == uuid.Nil {
		if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
			return apperrors.Storage(err)
		}
		return nil
	}
	err := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", item.ID).
		UpdateColumn("quantity", item.Quantity).Error
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (s *gormCartStore) Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return false, apperrors.Storage(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *gormCartStore) Clear(ctx context.Context, userID uuid.UUID) error {
	err := s.db.WithContext(ctx).Unscoped().
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// Wishlists

type gormWishlistStore gormStore

func (s *gormWishlistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return items, nil
}

func (s *gormWishlistStore) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Storage(err)
	}
	return count > 0, nil
}

func (s *gormWishlistStore) Add(ctx context.Context, item *models.WishlistItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (s *gormWishlistStore) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	err := s.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// Reviews

type gormReviewStore gormStore

func (s *gormReviewStore) Create(ctx context.Context, review *models.Review) error {
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (s *gormReviewStore) GetByAuthorAndProduct(ctx context.Context, authorID, productID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := s.db.WithContext(ctx).
		Where("author_id = ? AND product_id = ?", authorID, productID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("review")
		}
		return nil, apperrors.Storage(err)
	}
	return &review, nil
}

func (s *gormReviewStore) FindByProduct(ctx context.Context, productID uuid.UUID, offset, limit int) ([]models.Review, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Review{}).
		Where("product_id = ?", productID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Storage(err)
	}

	listQuery := query.Preload("Author").Order("created_at DESC")
	if offset > 0 {
		listQuery = listQuery.Offset(offset)
	}
	if limit > 0 {
		listQuery = listQuery.Limit(limit)
	}

	var reviews []models.Review
	if err := listQuery.Find(&reviews).Error; err != nil {
		return nil, 0, apperrors.Storage(err)
	}
	return reviews, total, nil
}

func (s *gormReviewStore) DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Unscoped().
		Where("product_id = ?", productID).
		Delete(&models.Review{})
	if result.Error != nil {
		return 0, apperrors.Storage(result.Error)
	}
	return result.RowsAffected, nil
}

// Orders

type gormOrderStore gormStore

func (s *gormOrderStore) Create(ctx context.Context, order *models.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (s *gormOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order")
		}
		return nil, apperrors.Storage(err)
	}
	return &order, nil
}

func (s *gormOrderStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return orders, nil
}
