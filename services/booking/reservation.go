package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "wintermarket/database/repository/booking"
	eventRepo "wintermarket/database/repository/event"
	"wintermarket/models"
	"wintermarket/utils"
)

// BookingStatus is the vendor-facing view of a checkout's bookings.
type BookingStatus struct {
	SessionID string                 `json:"session_id"`
	Paid      bool                   `json:"paid"`
	Bookings  []models.VendorBooking `json:"bookings"`
}

// DefaultReservationService turns reservation records into held booth
// slots, unpaid bookings and a Stripe checkout session. The whole batch
// commits or rolls back together.
type DefaultReservationService struct {
	Events   eventRepo.EventRepository
	Bookings bookingRepo.VendorBookingRepository
	Payments PaymentHandler
	Sheets   SheetSyncer
}

// heldBooking pairs a created booking with the slot it holds, so a failed
// batch can be unwound.
type heldBooking struct {
	booking models.VendorBooking
	eventID string
	slotID  string
}

// ReserveSingle reserves one booth on one event and hands back the
// checkout session to redirect the vendor to.
func (s *DefaultReservationService) ReserveSingle(ctx context.Context, eventID string, record models.ReservationRecord) (*models.CheckoutSession, error) {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return s.reserve(ctx, []*models.Event{event}, []models.ReservationRecord{record})
}

// ReserveMulti reserves one booth per record, resolving each record's
// event by its date. All records must belong to the same vendor.
func (s *DefaultReservationService) ReserveMulti(ctx context.Context, records []models.ReservationRecord) (*models.CheckoutSession, error) {
	if len(records) == 0 {
		return nil, NewValidationError("records", "no reservation records provided")
	}
	events := make([]*models.Event, 0, len(records))
	for _, record := range records {
		event, err := s.Events.GetByDate(ctx, record.EventDate)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch event for %s: %w", record.EventDate, err)
		}
		events = append(events, event)
	}
	return s.reserve(ctx, events, records)
}

// reserve holds one slot per event, persists unpaid bookings, then
// creates a single Stripe session covering all of them. Any failure
// releases every slot and deletes every booking created so far.
func (s *DefaultReservationService) reserve(ctx context.Context, events []*models.Event, records []models.ReservationRecord) (*models.CheckoutSession, error) {
	logger := utils.GetLogger()

	vendorType, err := vendorTypeFromNotes(records[0].Notes)
	if err != nil {
		return nil, err
	}

	held := make([]heldBooking, 0, len(records))
	rollback := func() {
		bg, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, h := range held {
			if relErr := s.Events.ReleaseSlot(bg, h.eventID, h.slotID); relErr != nil {
				logger.Error("rollback: failed to release slot",
					zap.String("event", h.eventID), zap.String("slot", h.slotID), zap.Error(relErr))
			}
			if delErr := s.Bookings.DeleteByID(bg, h.booking.ID); delErr != nil {
				logger.Error("rollback: failed to delete booking",
					zap.String("booking", h.booking.ID), zap.Error(delErr))
			}
		}
	}

	for i, event := range events {
		slot, err := s.Events.HoldSlot(ctx, event.ID, vendorType)
		if err != nil {
			rollback()
			if err == mongo.ErrNoDocuments {
				return nil, ErrSoldOut
			}
			return nil, fmt.Errorf("failed to hold slot on %s: %w", event.Date, err)
		}

		record := records[i]
		now := time.Now()
		vb := models.VendorBooking{
			ID:           uuid.New().String(),
			EventID:      event.ID,
			EventName:    event.Name,
			EventDate:    event.Date,
			BoothSlotID:  slot.ID,
			SpotNumber:   slot.SpotNumber,
			VendorType:   vendorType,
			VendorName:   record.VendorName,
			VendorEmail:  record.VendorEmail,
			BusinessName: record.BusinessName,
			Phone:        record.Phone,
			Notes:        record.Notes,
			IsPaid:       false,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := s.Bookings.Create(ctx, vb); err != nil {
			if relErr := s.Events.ReleaseSlot(ctx, event.ID, slot.ID); relErr != nil {
				logger.Error("failed to release slot after create failure", zap.Error(relErr))
			}
			rollback()
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		held = append(held, heldBooking{booking: vb, eventID: event.ID, slotID: slot.ID})
	}

	checkout, err := s.Payments.CreateCheckoutSession(ctx, checkoutItems(events, vendorType), checkoutMetadata(held, records[0]))
	if err != nil {
		rollback()
		return nil, err
	}

	for _, h := range held {
		if err := s.Bookings.SetStripeSession(ctx, h.booking.ID, checkout.SessionID); err != nil {
			logger.Error("failed to attach stripe session to booking",
				zap.String("booking", h.booking.ID), zap.Error(err))
		}
	}

	go s.syncToSheet(held, checkout.SessionID)

	return checkout, nil
}

// Status reports the bookings behind a checkout session. Paid is true
// once every booking in the batch has been marked paid.
func (s *DefaultReservationService) Status(ctx context.Context, sessionID string) (*BookingStatus, error) {
	bookings, err := s.Bookings.GetByStripeSessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, ErrSessionNotFound
	}
	paid := true
	for _, b := range bookings {
		if !b.IsPaid {
			paid = false
			break
		}
	}
	return &BookingStatus{SessionID: sessionID, Paid: paid, Bookings: bookings}, nil
}

// HandleCheckoutCompleted records the payment intent id on every booking
// of the completed checkout session.
func (s *DefaultReservationService) HandleCheckoutCompleted(ctx context.Context, sessionID, paymentIntentID string) error {
	bookings, err := s.Bookings.GetByStripeSessionID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to fetch bookings for session %s: %w", sessionID, err)
	}
	for _, b := range bookings {
		if err := s.Bookings.SetPaymentIntent(ctx, b.ID, paymentIntentID); err != nil {
			return fmt.Errorf("failed to set payment intent on booking %s: %w", b.ID, err)
		}
	}
	utils.GetLogger().Info("checkout completed",
		zap.String("session", sessionID), zap.Int("bookings", len(bookings)))
	return nil
}

// HandlePaymentIntentSucceeded marks every booking behind the intent as
// paid. Slots were already held at reservation time, so payment only
// flips the paid flag.
func (s *DefaultReservationService) HandlePaymentIntentSucceeded(ctx context.Context, paymentIntentID string) error {
	bookings, err := s.Bookings.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return fmt.Errorf("failed to fetch bookings for intent %s: %w", paymentIntentID, err)
	}
	for _, b := range bookings {
		if err := s.Bookings.MarkPaid(ctx, b.ID); err != nil {
			return fmt.Errorf("failed to mark booking %s paid: %w", b.ID, err)
		}
	}
	utils.GetLogger().Info("payment intent succeeded",
		zap.String("intent", paymentIntentID), zap.Int("bookings", len(bookings)))
	return nil
}

// syncToSheet pushes each booking row to the tracking spreadsheet. Sheet
// sync is best effort and never blocks or fails the checkout.
func (s *DefaultReservationService) syncToSheet(held []heldBooking, sessionID string) {
	if s.Sheets == nil {
		return
	}
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, h := range held {
		b := h.booking
		b.StripeSessionID = sessionID
		if err := s.Sheets.SyncBooking(ctx, b); err != nil {
			logger.Error("sheet sync failed",
				zap.String("booking", b.ID), zap.String("date", b.EventDate), zap.Error(err))
		}
	}
}

// vendorTypeFromNotes extracts and validates the vendor type embedded in
// a record's notes blob.
func vendorTypeFromNotes(notes string) (models.VendorType, error) {
	var parsed models.ReservationNotes
	if err := json.Unmarshal([]byte(notes), &parsed); err != nil {
		return "", NewValidationError("notes", "notes must be valid JSON")
	}
	if !parsed.VendorType.Valid() {
		return "", NewValidationError("vendorType", "unknown vendor type")
	}
	return parsed.VendorType, nil
}

// checkoutItems builds one Stripe line item per event being booked.
func checkoutItems(events []*models.Event, vendorType models.VendorType) []CheckoutItem {
	items := make([]CheckoutItem, 0, len(events))
	for _, event := range events {
		items = append(items, CheckoutItem{
			Name:        fmt.Sprintf("%s - %s", event.Name, FullFormattedDate(event.Date)),
			Description: fmt.Sprintf("%s, %s", MarketLabelFor(event.Date), EventTimeFor(event.Date)),
			AmountCents: int64(PricePerDay(vendorType)) * 100,
			Quantity:    1,
		})
	}
	return items
}

// checkoutMetadata tags the Stripe session with enough to trace it back
// to its bookings without a database hit.
func checkoutMetadata(held []heldBooking, first models.ReservationRecord) map[string]string {
	ids := make([]string, 0, len(held))
	for _, h := range held {
		ids = append(ids, h.booking.ID)
	}
	return map[string]string{
		"booking_ids":   strings.Join(ids, ","),
		"vendor_email":  first.VendorEmail,
		"business_name": first.BusinessName,
		"booking_count": strconv.Itoa(len(held)),
	}
}
