package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"wintermarket/config"
	"wintermarket/utils"
)

const webhookBodyLimit = 65536

// StripeWebhook verifies and dispatches Stripe events. Checkout
// completion attaches the payment intent to the batch's bookings;
// payment success marks them paid. Unhandled event types are
// acknowledged and ignored.
func StripeWebhook(c *gin.Context) {
	logger := utils.GetLogger()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, webhookBodyLimit))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook signature"})
		return
	}

	ctx := c.Request.Context()
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse checkout session"})
			return
		}
		intentID := ""
		if session.PaymentIntent != nil {
			intentID = session.PaymentIntent.ID
		}
		if err := ReservationSvc.HandleCheckoutCompleted(ctx, session.ID, intentID); err != nil {
			logger.Error("failed to handle checkout completion",
				zap.String("session", session.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
			return
		}

	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse payment intent"})
			return
		}
		if err := ReservationSvc.HandlePaymentIntentSucceeded(ctx, intent.ID); err != nil {
			logger.Error("failed to handle payment success",
				zap.String("intent", intent.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
			return
		}

	default:
		logger.Debug("ignoring stripe event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
