// internal/services/payment_service.go
package services

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/Neha-Singh-j/E-commerce/internal/config"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
)

// PaymentService fronts Stripe for order payments. When payments are
// switched off in config or no secret key is configured the service reports
// itself disabled and checkout proceeds without a payment intent.
type PaymentService struct {
	cfg *config.Config
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
}

func NewPaymentService(cfg *config.Config) *PaymentService {
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{cfg: cfg}
}

func (s *PaymentService) Enabled() bool {
	return s.cfg.Payment.Enabled && s.cfg.Payment.StripeSecretKey != ""
}

// amountInCents converts a dollar total to Stripe's integer cents, rounding
// to absorb binary float drift in the stored total.
func amountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

func (s *PaymentService) CreatePaymentIntent(userID uuid.UUID, order *models.Order) (*PaymentIntentResponse, error) {
	currency := s.cfg.Payment.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents(order.Total)),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("user_id", userID.String())
	params.AddMetadata("order_id", order.ID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Status:       string(pi.Status),
	}, nil
}
