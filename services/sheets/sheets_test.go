package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wintermarket/models"
)

func testBooking(vendorType models.VendorType) models.VendorBooking {
	notes, _ := json.Marshal(models.ReservationNotes{
		VendorType:            vendorType,
		PreferredName:         "Jay",
		Pronouns:              "they/them",
		Instagram:             "@riveraceramics",
		ProductsSelling:       "handmade mugs",
		CuisineType:           "BBQ",
		FoodItems:             "brisket sandwiches",
		SetupSize:             "20ft trailer",
		Generator:             "yes",
		PhotoConsent:          "yes",
		SharingBooth:          "yes",
		BoothPartnerInstagram: "@clayfriends",
	})
	return models.VendorBooking{
		ID:                    "bk1",
		EventName:             "THE FIRST TASTE",
		EventDate:             "2025-12-12",
		SpotNumber:            "R01",
		VendorType:            vendorType,
		VendorName:            "Jamie Q Rivera",
		VendorEmail:           "jamie@example.com",
		BusinessName:          "Rivera Ceramics",
		Phone:                 "352-555-0101",
		Notes:                 string(notes),
		StripeSessionID:       "cs_test_123",
		StripePaymentIntentID: "pi_test_456",
		CreatedAt:             time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestSyncBookingRegularRow(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "sheet": "General Vendor"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.SyncBooking(context.Background(), testBooking(models.VendorTypeRegular)); err != nil {
		t.Fatalf("SyncBooking failed: %v", err)
	}

	// The script reads these exact keys; anything else lands in a blank cell.
	want := map[string]string{
		"vendor_type":                "general",
		"event_name":                 "THE FIRST TASTE",
		"event_date":                 "2025-12-12",
		"first_name":                 "Jamie",
		"last_name":                  "Q Rivera",
		"preferred_name":             "Jay",
		"pronouns":                   "they/them",
		"vendor_email":               "jamie@example.com",
		"phone":                      "352-555-0101",
		"business_name":              "Rivera Ceramics",
		"instagram":                  "@riveraceramics",
		"booth_slot":                 "R01",
		"sharing_booth":              "yes",
		"booth_partner_instagram":    "@clayfriends",
		"products_selling":           "handmade mugs",
		"stripe_payment_id":          "cs_test_123",
		"stripe_checkout_session_id": "cs_test_123",
		"stripe_payment_intent_id":   "pi_test_456",
		"timestamp":                  "2025-12-01T10:30:00Z",
	}
	for key, val := range want {
		if got, _ := received[key].(string); got != val {
			t.Errorf("row[%q] = %q, want %q", key, got, val)
		}
	}
	if paid, _ := received["is_paid"].(bool); paid {
		t.Error("is_paid should be false for an unpaid booking")
	}
	// Sheet routing is the script's job, driven by vendor_type.
	if _, ok := received["sheet"]; ok {
		t.Error("row should not include a sheet key")
	}
	// Regular vendor rows never carry food truck columns.
	if _, ok := received["cuisine_type"]; ok {
		t.Error("regular row should not include cuisine_type")
	}
}

func TestSyncBookingFoodTruckRow(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "sheet": "Food Trucks"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.SyncBooking(context.Background(), testBooking(models.VendorTypeFood)); err != nil {
		t.Fatalf("SyncBooking failed: %v", err)
	}

	if got, _ := received["vendor_type"].(string); got != "food" {
		t.Errorf("vendor_type = %q, want food", got)
	}
	for _, key := range []string{"cuisine_type", "food_items", "setup_size", "generator"} {
		if _, ok := received[key]; !ok {
			t.Errorf("food truck row missing %q", key)
		}
	}
	if _, ok := received["products_selling"]; ok {
		t.Error("food truck row should not include products_selling")
	}
}

func TestSyncBookingRejectedRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "unknown sheet"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.SyncBooking(context.Background(), testBooking(models.VendorTypeRegular)); err == nil {
		t.Fatal("SyncBooking should fail when the script reports an error")
	}
}

func TestSyncBookingServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.SyncBooking(context.Background(), testBooking(models.VendorTypeRegular)); err == nil {
		t.Fatal("SyncBooking should fail on a 5xx reply")
	}
}

func TestSyncBookingUnconfigured(t *testing.T) {
	client := NewClient("")
	if err := client.SyncBooking(context.Background(), testBooking(models.VendorTypeRegular)); err == nil {
		t.Fatal("SyncBooking should fail when no webhook URL is configured")
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		full  string
		first string
		last  string
	}{
		{"Jamie Rivera", "Jamie", "Rivera"},
		{"Jamie Q Rivera", "Jamie", "Q Rivera"},
		{"Cher", "Cher", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := splitName(tt.full)
		if first != tt.first || last != tt.last {
			t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)", tt.full, first, last, tt.first, tt.last)
		}
	}
}
