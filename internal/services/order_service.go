// internal/services/order_service.go
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Neha-Singh-j/E-commerce/internal/apperrors"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
)

type OrderService struct {
	store          store.Store
	paymentService *PaymentService
}

// CheckoutResult pairs the persisted order with the transient payment
// payload the boundary hands to the client. The payment intent is never
// stored on the order; orders stay immutable.
type CheckoutResult struct {
	Order   *models.Order          `json:"order"`
	Payment *PaymentIntentResponse `json:"payment,omitempty"`
}

func NewOrderService(st store.Store, paymentService *PaymentService) *OrderService {
	return &OrderService{
		store:          st,
		paymentService: paymentService,
	}
}

// Checkout converts the user's cart into an immutable order. Inside one
// store transaction it re-resolves every entry, snapshots the current unit
// price into a line item, decrements stock, creates the order, and clears
// the cart. Any failure (including a stock shortfall discovered inside the
// transaction) rolls the whole sequence back, so a cart can never be
// checked out twice and stock can never be oversold by a committed order.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error) {
	items, err := s.store.Carts().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	var order *models.Order
	err = s.store.Atomic(ctx, func(tx store.Store) error {
		var orderItems []models.OrderItem
		var total float64

		for _, item := range items {
			product, err := tx.Products().GetByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					// Stale cart reference; skip it like the cart view does.
					continue
				}
				return err
			}

			if err := tx.Products().AdjustStock(ctx, product.ID, -item.Quantity); err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    item.Quantity,
			})
			total += product.Price * float64(item.Quantity)
		}

		if len(orderItems) == 0 {
			return apperrors.ErrEmptyCart
		}

		order = &models.Order{
			UserID: userID,
			Total:  total,
			Status: models.OrderStatusPlaced,
			Items:  orderItems,
		}
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}

		return tx.Carts().Clear(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{Order: order}
	if s.paymentService != nil && s.paymentService.Enabled() {
		payment, err := s.paymentService.CreatePaymentIntent(userID, order)
		if err != nil {
			// The order is already committed; payment can be retried from
			// the order page, so surface the order anyway.
			logrus.WithError(err).WithField("order_id", order.ID).
				Warn("Failed to create payment intent for order")
		} else {
			result.Payment = payment
		}
	}
	return result, nil
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.store.Orders().FindByUser(ctx, userID)
}

// GetOrder returns a single order, only to its owner.
func (s *OrderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*models.Order, error) {
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	order, err := s.store.Orders().GetByID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return order, nil
}
