package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wintermarket/models"
)

// GetByStripeSessionID fetches all bookings tied to a checkout session.
// A multi-date booking produces several bookings sharing one session.
func (r *mongoBookingRepo) GetByStripeSessionID(ctx context.Context, sessionID string) ([]models.VendorBooking, error) {
	return r.find(ctx, bson.M{"stripe_session_id": sessionID})
}

// GetByPaymentIntentID fetches all bookings tied to a payment intent.
func (r *mongoBookingRepo) GetByPaymentIntentID(ctx context.Context, intentID string) ([]models.VendorBooking, error) {
	return r.find(ctx, bson.M{"stripe_payment_intent_id": intentID})
}

// ListByVendorType returns bookings of one vendor category, newest first.
func (r *mongoBookingRepo) ListByVendorType(ctx context.Context, vendorType models.VendorType) ([]models.VendorBooking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"vendor_type": string(vendorType)}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.VendorBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// SetStripeSession records the checkout session id on a booking.
func (r *mongoBookingRepo) SetStripeSession(ctx context.Context, id, sessionID string) error {
	return r.setField(ctx, id, "stripe_session_id", sessionID)
}

// SetPaymentIntent records the payment intent id on a booking.
func (r *mongoBookingRepo) SetPaymentIntent(ctx context.Context, id, intentID string) error {
	return r.setField(ctx, id, "stripe_payment_intent_id", intentID)
}

// MarkPaid flips a booking to paid.
func (r *mongoBookingRepo) MarkPaid(ctx context.Context, id string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"is_paid":    true,
		"updated_at": time.Now(),
	}})
	return err
}

// FindStaleUnpaid returns abandoned bookings created before the cutoff, so
// the sweeper can release their held slots. A booking with a payment intent
// id completed checkout: its payment is authorized and waits on manual
// capture, which can be days later, so it is never stale.
func (r *mongoBookingRepo) FindStaleUnpaid(ctx context.Context, olderThan time.Time) ([]models.VendorBooking, error) {
	return r.find(ctx, bson.M{
		"is_paid":    false,
		"created_at": bson.M{"$lt": olderThan},
		"$or": bson.A{
			bson.M{"stripe_payment_intent_id": bson.M{"$exists": false}},
			bson.M{"stripe_payment_intent_id": ""},
		},
	})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.VendorBooking, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.VendorBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) setField(ctx context.Context, id, field, value string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		field:        value,
		"updated_at": time.Now(),
	}})
	return err
}
