// internal/services/order_service_test.go
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

func TestCheckoutEmptyCart(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewOrderService(st, nil)

	_, err := svc.Checkout(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestCheckoutCreatesImmutableOrder(t *testing.T) {
	st := store.NewMemoryStore()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	pen := seedProduct(t, st, seller.ID, "pen", 5.00, 10)
	userID := uuid.New()

	_, err := carts.AddItem(context.Background(), userID, mug.ID.String(), 2)
	require.NoError(t, err)
	_, err = carts.AddItem(context.Background(), userID, pen.ID.String(), 1)
	require.NoError(t, err)

	result, err := svc.Checkout(context.Background(), userID)
	require.NoError(t, err)
	order := result.Order
	require.NotNil(t, order)

	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, 25.00, order.Total)
	assert.Len(t, order.Items, 2)

	// Stock was decremented inside the transaction
	freshMug, err := st.Products().GetByID(context.Background(), mug.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, freshMug.Stock)

	// Cart is empty; a second checkout has nothing to convert
	summary, err := carts.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	_, err = svc.Checkout(context.Background(), userID)
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	st := store.NewMemoryStore()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	userID := uuid.New()

	_, err := carts.AddItem(context.Background(), userID, mug.ID.String(), 1)
	require.NoError(t, err)

	result, err := svc.Checkout(context.Background(), userID)
	require.NoError(t, err)

	// Reprice the product after checkout
	mug.Price = 99.00
	require.NoError(t, st.Products().Update(context.Background(), mug))

	order, err := svc.GetOrder(context.Background(), userID, result.Order.ID.String())
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 10.00, order.Items[0].UnitPrice)
	assert.Equal(t, "mug", order.Items[0].ProductName)
	assert.Equal(t, 10.00, order.Total)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	st := store.NewMemoryStore()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 3)
	first := uuid.New()
	second := uuid.New()

	// Both users cart 2 units while 3 are in stock
	_, err := carts.AddItem(context.Background(), first, mug.ID.String(), 2)
	require.NoError(t, err)
	_, err = carts.AddItem(context.Background(), second, mug.ID.String(), 2)
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), first)
	require.NoError(t, err)

	// Only 1 unit left; the second checkout must fail and leave the cart alone
	_, err = svc.Checkout(context.Background(), second)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)

	items, err := st.Carts().ListByUser(context.Background(), second)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCheckoutSkipsDeletedProducts(t *testing.T) {
	st := store.NewMemoryStore()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	pen := seedProduct(t, st, seller.ID, "pen", 5.00, 10)
	userID := uuid.New()

	_, err := carts.AddItem(context.Background(), userID, mug.ID.String(), 1)
	require.NoError(t, err)
	_, err = carts.AddItem(context.Background(), userID, pen.ID.String(), 1)
	require.NoError(t, err)

	require.NoError(t, st.Products().Delete(context.Background(), mug.ID))

	result, err := svc.Checkout(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, pen.ID, result.Order.Items[0].ProductID)
	assert.Equal(t, 5.00, result.Order.Total)
}

func TestCheckoutAllReferencesStale(t *testing.T) {
	st := store.NewMemoryStore()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	userID := uuid.New()

	_, err := carts.AddItem(context.Background(), userID, mug.ID.String(), 1)
	require.NoError(t, err)
	require.NoError(t, st.Products().Delete(context.Background(), mug.ID))

	_, err = svc.Checkout(context.Background(), userID)
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestGetOrderOwnership(t *testing.T) {
	st := store.NewMemoryStore()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	owner := uuid.New()

	_, err := carts.AddItem(context.Background(), owner, mug.ID.String(), 1)
	require.NoError(t, err)
	result, err := svc.Checkout(context.Background(), owner)
	require.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), uuid.New(), result.Order.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	order, err := svc.GetOrder(context.Background(), owner, result.Order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, result.Order.ID, order.ID)
}

func TestListOrdersNewestFirst(t *testing.T) {
	st := store.NewMemoryStore()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	seller := seedUser(t, st, models.UserRoleSeller)
	mug := seedProduct(t, st, seller.ID, "mug", 10.00, 10)
	userID := uuid.New()

	_, err := carts.AddItem(context.Background(), userID, mug.ID.String(), 1)
	require.NoError(t, err)
	first, err := svc.Checkout(context.Background(), userID)
	require.NoError(t, err)

	_, err = carts.AddItem(context.Background(), userID, mug.ID.String(), 1)
	require.NoError(t, err)
	second, err := svc.Checkout(context.Background(), userID)
	require.NoError(t, err)

	orders, err := svc.ListOrders(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.Order.ID, orders[0].ID)
	assert.Equal(t, first.Order.ID, orders[1].ID)
}
