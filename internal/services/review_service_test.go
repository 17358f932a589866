// internal/services/review_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neha-Singh-j/E-commerce/internal/apperrors"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
	"github.com/Neha-Singh-j/E-commerce/internal/utils"
)

func TestAddReviewUpdatesRatingAggregate(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewReviewService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)

	_, err := svc.AddReview(context.Background(), uuid.New(), mug.ID.String(), &AddReviewRequest{
		Rating:  4,
		Comment: "Solid mug, holds coffee well.",
	})
	require.NoError(t, err)

	_, err = svc.AddReview(context.Background(), uuid.New(), mug.ID.String(), &AddReviewRequest{
		Rating:  2,
		Comment: "Handle snapped off within a week.",
	})
	require.NoError(t, err)

	fresh, err := st.Products().GetByID(context.Background(), mug.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.ReviewCount)
	assert.InDelta(t, 3.0, fresh.Rating, 0.001)
}

func TestAddReviewRejectsDuplicate(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewReviewService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	author := uuid.New()

	req := &AddReviewRequest{Rating: 5, Comment: "Exactly as described, thank you."}
	_, err := svc.AddReview(context.Background(), author, mug.ID.String(), req)
	require.NoError(t, err)

	_, err = svc.AddReview(context.Background(), author, mug.ID.String(), req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateReview)

	// The aggregate only counted the first submission
	fresh, err := st.Products().GetByID(context.Background(), mug.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.ReviewCount)
}

func TestAddReviewValidation(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewReviewService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)

	_, err := svc.AddReview(context.Background(), uuid.New(), mug.ID.String(), &AddReviewRequest{
		Rating:  6,
		Comment: "Rating is out of range here.",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.AddReview(context.Background(), uuid.New(), mug.ID.String(), &AddReviewRequest{
		Rating:  3,
		Comment: "too short",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAddReviewUnknownProduct(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewReviewService(st)

	_, err := svc.AddReview(context.Background(), uuid.New(), uuid.NewString(), &AddReviewRequest{
		Rating:  4,
		Comment: "Reviewing a ghost product.",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListReviewsPaginated(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewReviewService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)

	for i := 0; i < 5; i++ {
		_, err := svc.AddReview(context.Background(), uuid.New(), mug.ID.String(), &AddReviewRequest{
			Rating:  4,
			Comment: "Another satisfied customer here.",
		})
		require.NoError(t, err)
	}

	reviews, total, err := svc.ListReviews(context.Background(), mug.ID.String(), utils.PaginationParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, reviews, 2)

	reviews, _, err = svc.ListReviews(context.Background(), mug.ID.String(), utils.PaginationParams{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
