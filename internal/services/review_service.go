// internal/services/review_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Neha-Singh-j/E-commerce/internal/apperrors"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
	"github.com/Neha-Singh-j/E-commerce/internal/utils"
)

type ReviewService struct {
	store store.Store
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=10,max=500"`
}

func NewReviewService(st store.Store) *ReviewService {
	return &ReviewService{store: st}
}

// AddReview creates a review and folds it into the product's denormalized
// rating aggregate. Both writes run inside one transaction so a failure
// can't leave a review that the product doesn't account for; the composite
// unique index on (author, product) backs up the duplicate check under
// concurrent submits.
func (s *ReviewService) AddReview(ctx context.Context, authorID uuid.UUID, productID string, req *AddReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	var review *models.Review
	err = s.store.Atomic(ctx, func(tx store.Store) error {
		product, err := tx.Products().GetByID(ctx, productUUID)
		if err != nil {
			return err
		}

		_, err = tx.Reviews().GetByAuthorAndProduct(ctx, authorID, productUUID)
		if err == nil {
			return apperrors.ErrDuplicateReview
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		review = &models.Review{
			AuthorID:  authorID,
			ProductID: productUUID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := tx.Reviews().Create(ctx, review); err != nil {
			return err
		}

		newCount := product.ReviewCount + 1
		newRating := (product.Rating*float64(product.ReviewCount) + float64(req.Rating)) / float64(newCount)
		return tx.Products().SetRating(ctx, productUUID, newRating, newCount)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews returns a product's reviews, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, productID string, params utils.PaginationParams) ([]models.Review, int64, error) {
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return nil, 0, apperrors.ErrInvalidID
	}

	if _, err := s.store.Products().GetByID(ctx, productUUID); err != nil {
		return nil, 0, err
	}

	return s.store.Reviews().FindByProduct(ctx, productUUID, params.Offset(), params.Limit)
}
