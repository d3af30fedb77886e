package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"

	"wintermarket/config"
	"wintermarket/models"
)

// --- Interfaces ---

// CheckoutItem is one purchasable line of a checkout session.
type CheckoutItem struct {
	Name        string
	Description string
	AmountCents int64
	Quantity    int64
}

// PaymentHandler creates checkout sessions for reservation batches.
type PaymentHandler interface {
	CreateCheckoutSession(ctx context.Context, items []CheckoutItem, metadata map[string]string) (*models.CheckoutSession, error)
}

// --- PaymentHandler Implementation ---

// StripePaymentHandler creates Stripe Checkout Sessions with manual
// capture: funds are authorized at checkout and captured only after the
// application is approved.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewPaymentHandler constructs a StripePaymentHandler.
func NewPaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreateCheckoutSession builds one Stripe session covering all items.
// The whole batch is a single all-or-nothing external call.
func (h *StripePaymentHandler) CreateCheckoutSession(ctx context.Context, items []CheckoutItem, metadata map[string]string) (*models.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("checkout session requires at least one item")
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Name),
					Description: stripe.String(item.Description),
				},
				UnitAmount: stripe.Int64(item.AmountCents),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			CaptureMethod: stripe.String("manual"),
		},
		SuccessURL: stripe.String(config.AppConfig.FrontendBaseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(config.AppConfig.FrontendBaseURL + "/checkout/cancel"),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		h.logger.Error("stripe checkout session creation failed", zap.Error(err))
		return nil, fmt.Errorf("stripe error: %w", err)
	}

	h.logger.Info("stripe checkout session created", zap.String("session", sess.ID))
	return &models.CheckoutSession{
		CheckoutURL: sess.URL,
		SessionID:   sess.ID,
	}, nil
}
