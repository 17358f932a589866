// internal/services/cart_service_test.go
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
)

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	product := seedProduct(t, st, seller.ID, "mug", 5.00, 10)
	userID := uuid.New()

	item, err := svc.AddItem(context.Background(), userID, product.ID.String(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddItemIncrementsExistingEntry(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	product := seedProduct(t, st, seller.ID, "mug", 5.00, 10)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, product.ID.String(), 2)
	require.NoError(t, err)
	item, err := svc.AddItem(context.Background(), userID, product.ID.String(), 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	// Still a single entry for the product
	items, err := st.Carts().ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddItemQuantityBounds(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	product := seedProduct(t, st, seller.ID, "mug", 5.00, 100)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, product.ID.String(), 11)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.AddItem(context.Background(), userID, product.ID.String(), -1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAddItemInsufficientStock(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	product := seedProduct(t, st, seller.ID, "mug", 5.00, 3)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, product.ID.String(), 2)
	require.NoError(t, err)

	// 2 already carted, 2 more would exceed the 3 in stock
	_, err = svc.AddItem(context.Background(), userID, product.ID.String(), 2)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
}

func TestAddItemSucceedsAtStockBoundary(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	product := seedProduct(t, st, seller.ID, "mug", 5.00, 3)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, product.ID.String(), 2)
	require.NoError(t, err)

	// 2 carted plus 1 more lands exactly on the 3 in stock
	item, err := svc.AddItem(context.Background(), userID, product.ID.String(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestClearCartZeroesTotals(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	spoon := seedProduct(t, st, seller.ID, "spoon", 5.00, 10)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, mug.ID.String(), 2)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), userID, spoon.ID.String(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), userID))

	summary, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Equal(t, float64(0), summary.TotalAmount)
	assert.Equal(t, 0, summary.TotalItems)

	count, err := svc.Count(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Clearing an already empty cart is a no-op
	require.NoError(t, svc.Clear(context.Background(), userID))
}

func TestAddItemInvalidProductID(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)

	_, err := svc.AddItem(context.Background(), uuid.New(), "not-a-uuid", 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
}

func TestAddItemUnknownProduct(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)

	_, err := svc.AddItem(context.Background(), uuid.New(), uuid.NewString(), 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	product := seedProduct(t, st, seller.ID, "mug", 5.00, 10)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, product.ID.String(), 5)
	require.NoError(t, err)

	item, err := svc.UpdateQuantity(context.Background(), userID, product.ID.String(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestUpdateQuantityMissingItem(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	product := seedProduct(t, st, seller.ID, "mug", 5.00, 10)

	_, err := svc.UpdateQuantity(context.Background(), uuid.New(), product.ID.String(), 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	product := seedProduct(t, st, seller.ID, "mug", 5.00, 10)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, product.ID.String(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(context.Background(), userID, product.ID.String()))
	// Second removal of the same product is a no-op, not an error
	require.NoError(t, svc.RemoveItem(context.Background(), userID, product.ID.String()))
}

func TestGetCartDerivesTotals(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	pen := seedProduct(t, st, seller.ID, "pen", 5.00, 10)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, mug.ID.String(), 2)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), userID, pen.ID.String(), 1)
	require.NoError(t, err)

	summary, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 2)
	assert.Equal(t, 25.00, summary.TotalAmount)
	assert.Equal(t, 3, summary.TotalItems)
}

func TestGetCartSkipsDeletedProducts(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewCartService(st)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	pen := seedProduct(t, st, seller.ID, "pen", 5.00, 10)
	userID := uuid.New()

	_, err := svc.AddItem(context.Background(), userID, mug.ID.String(), 2)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), userID, pen.ID.String(), 1)
	require.NoError(t, err)

	require.NoError(t, st.Products().Delete(context.Background(), mug.ID))

	summary, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, 5.00, summary.TotalAmount)

	// The raw count still includes the dangling entry
	count, err := svc.Count(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
