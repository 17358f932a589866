// internal/services/cart_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Neha-Singh-j/E-commerce/internal/apperrors"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
)

// CartService owns every cart mutation. The stock bound is re-checked on
// each call against the live product row, never cached: stock is a shared,
// frequently-changing resource.
type CartService struct {
	store store.Store
}

func NewCartService(st store.Store) *CartService {
	return &CartService{store: st}
}

// AddItem puts quantity units of the product into the user's cart. If the
// product is already present its quantity is incremented in place; a cart
// never holds two entries for the same product.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, productID string, quantity int) (*models.CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < models.MinCartQuantity || quantity > models.MaxCartQuantity {
		return nil, fmt.Errorf("%w: quantity must be between %d and %d per call",
			apperrors.ErrValidation, models.MinCartQuantity, models.MaxCartQuantity)
	}

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	product, err := s.store.Products().GetByID(ctx, productUUID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.Carts().Get(ctx, userID, productUUID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if !product.InStock(newQuantity) {
			return nil, apperrors.ErrInsufficientStock
		}
		existing.Quantity = newQuantity
		if err := s.store.Carts().Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	if !product.InStock(quantity) {
		return nil, apperrors.ErrInsufficientStock
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productUUID,
		Quantity:  quantity,
	}
	if err := s.store.Carts().Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity sets an absolute quantity for an item already in the cart.
func (s *CartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < models.MinCartQuantity || quantity > models.MaxCartQuantity {
		return nil, fmt.Errorf("%w: quantity must be between %d and %d",
			apperrors.ErrValidation, models.MinCartQuantity, models.MaxCartQuantity)
	}

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	product, err := s.store.Products().GetByID(ctx, productUUID)
	if err != nil {
		return nil, err
	}

	item, err := s.store.Carts().Get(ctx, userID, productUUID)
	if err != nil {
		return nil, err
	}

	if !product.InStock(quantity) {
		return nil, apperrors.ErrInsufficientStock
	}

	item.Quantity = quantity
	if err := s.store.Carts().Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem removes at most one matching entry. Removing an item that is
// not in the cart is a no-op success, not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID string) error {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	_, err = s.store.Carts().Delete(ctx, userID, productUUID)
	return err
}

// Clear unconditionally empties the cart.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.store.Carts().Clear(ctx, userID)
}

// GetCart resolves every entry against the live catalog and derives the
// totals. Entries whose product has since been deleted are silently skipped.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartSummary, error) {
	items, err := s.store.Carts().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &models.CartSummary{Items: []models.CartLine{}}
	for _, item := range items {
		product, err := s.store.Products().GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Stale reference: product deleted after it was carted.
				continue
			}
			return nil, err
		}
		lineTotal := product.Price * float64(item.Quantity)
		summary.Items = append(summary.Items, models.CartLine{
			Product:  *product,
			Quantity: item.Quantity,
			Total:    lineTotal,
		})
		summary.TotalAmount += lineTotal
		summary.TotalItems += item.Quantity
	}
	return summary, nil
}

// Count sums quantities over the raw cart without resolving products, so a
// stale entry still counts until a cart view prunes perception of it.
func (s *CartService) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	items, err := s.store.Carts().ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}
