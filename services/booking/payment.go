package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"

	"turfbook/models"
)

// PaymentHandler creates a payment link for a reserved cart.
type PaymentHandler interface {
	CreatePaymentLink(ctx context.Context, cart *models.CartSession) (string, error)
}

// StripePaymentHandler implements PaymentHandler with Stripe Checkout.
type StripePaymentHandler struct {
	logger     *zap.Logger
	currency   string
	successURL string
}

// NewStripePaymentHandler creates a new StripePaymentHandler.
func NewStripePaymentHandler(logger *zap.Logger, currency, successURL string) *StripePaymentHandler {
	return &StripePaymentHandler{
		logger:     logger,
		currency:   currency,
		successURL: successURL,
	}
}

// CreatePaymentLink creates a Stripe Checkout session covering the cart
// total and returns its hosted payment URL. Amounts are converted to the
// currency's minor unit.
func (h *StripePaymentHandler) CreatePaymentLink(ctx context.Context, cart *models.CartSession) (string, error) {
	total := cart.Total()
	if total <= 0 {
		return "", errors.New("cart total must be positive")
	}

	var lineItems []*stripe.CheckoutSessionLineItemParams
	for _, item := range cart.Items {
		name := fmt.Sprintf("%s on %s, %s %s-%s", item.Sport, item.CourtName, item.Date, item.StartTime, item.EndTime)
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(h.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(name),
				},
				UnitAmount: stripe.Int64(int64(item.Price) * 100),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(h.successURL),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	h.logger.Info("Created Stripe checkout session",
		zap.String("sessionID", sess.ID), zap.Int("total", total))
	return sess.URL, nil
}
