package models

import "time"

// VendorBooking represents a vendor's reservation of one booth slot,
// created unpaid and marked paid once the payment intent succeeds.
type VendorBooking struct {
	ID           string     `bson:"id" json:"id"`
	EventID      string     `bson:"event_id" json:"event_id"`
	EventName    string     `bson:"event_name" json:"event_name"`
	EventDate    string     `bson:"event_date" json:"event_date"`
	BoothSlotID  string     `bson:"booth_slot_id" json:"booth_slot_id"`
	SpotNumber   string     `bson:"spot_number" json:"spot_number"`
	VendorType   VendorType `bson:"vendor_type" json:"vendor_type"`
	VendorName   string     `bson:"vendor_name" json:"vendor_name"`
	VendorEmail  string     `bson:"vendor_email" json:"vendor_email"`
	BusinessName string     `bson:"business_name" json:"business_name"`
	Phone        string     `bson:"phone" json:"phone"`
	Notes        string     `bson:"notes" json:"notes"`

	StripeSessionID       string `bson:"stripe_session_id,omitempty" json:"stripe_session_id,omitempty"`
	StripePaymentIntentID string `bson:"stripe_payment_intent_id,omitempty" json:"stripe_payment_intent_id,omitempty"`
	IsPaid                bool   `bson:"is_paid" json:"is_paid"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
