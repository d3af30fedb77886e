package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"wintermarket/models"
	"wintermarket/utils"
)

// Client posts booking rows to the spreadsheet webhook, an Apps Script
// style endpoint that appends one row per call.
type Client struct {
	WebhookURL string
	HTTPClient *http.Client
	logger     *zap.Logger
}

// NewClient constructs a sheet client for the given webhook URL.
func NewClient(webhookURL string) *Client {
	return &Client{
		WebhookURL: webhookURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		logger:     utils.GetLogger(),
	}
}

// webhookResponse is the script's reply envelope.
type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Sheet   string `json:"sheet"`
}

// SyncBooking appends one booking as a row on the sheet matching its
// vendor type. A non-2xx status or success=false reply is an error; the
// caller decides whether that is fatal.
func (c *Client) SyncBooking(ctx context.Context, booking models.VendorBooking) error {
	if c.WebhookURL == "" {
		return fmt.Errorf("sheets webhook URL is not configured")
	}

	payload := rowPayload(booking)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode sheet row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sheet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheet webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sheet webhook returned status %d", resp.StatusCode)
	}

	var reply webhookResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return fmt.Errorf("failed to decode sheet webhook reply: %w", err)
	}
	if !reply.Success {
		if reply.Error != "" {
			return fmt.Errorf("sheet webhook rejected row: %s", reply.Error)
		}
		return fmt.Errorf("sheet webhook rejected row")
	}

	c.logger.Info("booking synced to sheet",
		zap.String("booking", booking.ID),
		zap.String("sheet", reply.Sheet))
	return nil
}

// vendorTypeValue maps a vendor type onto the script's discriminator
// values; the script routes "food" to the Food Trucks sheet and anything
// else to General Vendor.
func vendorTypeValue(vendorType models.VendorType) string {
	if vendorType == models.VendorTypeFood {
		return "food"
	}
	return "general"
}

// splitName divides a full name into first and last, keeping everything
// after the first word in the last name.
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// rowPayload flattens a booking plus its notes blob into the column
// contract the script reads. Key names must match the script exactly:
// it defaults every unknown or missing key to a blank cell, and routes
// the row by the vendor_type discriminator.
func rowPayload(booking models.VendorBooking) map[string]any {
	var notes models.ReservationNotes
	// A malformed blob still produces a row, just with the typed fields blank.
	_ = json.Unmarshal([]byte(booking.Notes), &notes)

	first, last := splitName(booking.VendorName)

	row := map[string]any{
		"vendor_type":    vendorTypeValue(booking.VendorType),
		"event_name":     booking.EventName,
		"event_date":     booking.EventDate,
		"first_name":     first,
		"last_name":      last,
		"preferred_name": notes.PreferredName,
		"pronouns":       notes.Pronouns,
		"vendor_email":   booking.VendorEmail,
		"phone":          booking.Phone,
		"business_name":  booking.BusinessName,
		"instagram":      notes.Instagram,
		"booth_slot":     booking.SpotNumber,

		"social_media_consent":    notes.SocialMediaConsent,
		"photo_consent":           notes.PhotoConsent,
		"noise_sensitive":         notes.NoiseSensitive,
		"sharing_booth":           notes.SharingBooth,
		"booth_partner_instagram": notes.BoothPartnerInstagram,
		"price_range":             notes.PriceRange,
		"additional_notes":        notes.AdditionalNotes,

		// The script's Stripe Payment ID and Checkout Session ID columns
		// both carry the checkout session id.
		"stripe_payment_id":          booking.StripeSessionID,
		"stripe_checkout_session_id": booking.StripeSessionID,
		"stripe_payment_intent_id":   booking.StripePaymentIntentID,
		"is_paid":                    booking.IsPaid,
		"timestamp":                  booking.CreatedAt.Format(time.RFC3339),
	}

	if booking.VendorType == models.VendorTypeFood {
		row["cuisine_type"] = notes.CuisineType
		row["food_items"] = notes.FoodItems
		row["setup_size"] = notes.SetupSize
		row["generator"] = notes.Generator
	} else {
		row["products_selling"] = notes.ProductsSelling
		row["electricity_cord"] = notes.ElectricityCord
	}

	return row
}
