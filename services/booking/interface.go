package booking

import (
	"context"

	"wintermarket/models"
)

// SelectionService manages a vendor's in-progress date selection.
type SelectionService interface {
	StartSelection(ctx context.Context, mode models.SelectionMode) (*models.Selection, error)
	GetSelection(ctx context.Context, sessionID string) (*models.Selection, error)
	ToggleDate(ctx context.Context, sessionID, date string) (*models.Selection, error)
	ClearSelection(ctx context.Context, sessionID string) (*models.Selection, error)
	SwitchMode(ctx context.Context, sessionID string, mode models.SelectionMode) (*models.Selection, error)
}

// ReservationService commits reservation records to held slots and a
// checkout session, and reacts to payment lifecycle events.
type ReservationService interface {
	ReserveSingle(ctx context.Context, eventID string, record models.ReservationRecord) (*models.CheckoutSession, error)
	ReserveMulti(ctx context.Context, records []models.ReservationRecord) (*models.CheckoutSession, error)
	Status(ctx context.Context, sessionID string) (*BookingStatus, error)
	HandleCheckoutCompleted(ctx context.Context, sessionID, paymentIntentID string) error
	HandlePaymentIntentSucceeded(ctx context.Context, paymentIntentID string) error
}

// SheetSyncer mirrors bookings into the organizer's tracking sheet.
type SheetSyncer interface {
	SyncBooking(ctx context.Context, booking models.VendorBooking) error
}
