// internal/services/wishlist_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Neha-Singh-j/E-commerce/internal/apperrors"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
)

// WishlistService keeps a per-user set of product references, independent
// of the cart.
type WishlistService struct {
	store store.Store
}

func NewWishlistService(st store.Store) *WishlistService {
	return &WishlistService{store: st}
}

// Toggle adds the product to the wishlist if absent and removes it if
// present, reporting the resulting state.
func (s *WishlistService) Toggle(ctx context.Context, userID uuid.UUID, productID string) (bool, error) {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return false, apperrors.ErrInvalidID
	}

	if _, err := s.store.Products().GetByID(ctx, productUUID); err != nil {
		return false, err
	}

	exists, err := s.store.Wishlists().Exists(ctx, userID, productUUID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.store.Wishlists().Remove(ctx, userID, productUUID); err != nil {
			return false, err
		}
		return false, nil
	}

	item := &models.WishlistItem{UserID: userID, ProductID: productUUID}
	if err := s.store.Wishlists().Add(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}

func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	return s.store.Wishlists().ListByUser(ctx, userID)
}
