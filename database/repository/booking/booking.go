package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"wintermarket/database"
	"wintermarket/models"
	"wintermarket/utils"
)

// VendorBookingRepository defines persistence operations for vendor bookings.
type VendorBookingRepository interface {
	Create(ctx context.Context, booking models.VendorBooking) (string, error)
	GetByID(ctx context.Context, id string) (*models.VendorBooking, error)
	GetByStripeSessionID(ctx context.Context, sessionID string) ([]models.VendorBooking, error)
	GetByPaymentIntentID(ctx context.Context, intentID string) ([]models.VendorBooking, error)
	ListByVendorType(ctx context.Context, vendorType models.VendorType) ([]models.VendorBooking, error)
	SetStripeSession(ctx context.Context, id, sessionID string) error
	SetPaymentIntent(ctx context.Context, id, intentID string) error
	MarkPaid(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error

	// FindStaleUnpaid returns unpaid bookings older than the cutoff that
	// never completed checkout (no payment intent id). Bookings awaiting
	// manual capture keep their slot.
	FindStaleUnpaid(ctx context.Context, olderThan time.Time) ([]models.VendorBooking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new VendorBookingRepository instance using MongoDB.
func NewMongoBookingRepo() VendorBookingRepository {
	db := database.MongoClient.Database("wintermarket")
	repo := &mongoBookingRepo{
		coll: db.Collection("vendor_bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure booking indexes", zap.Error(err))
	}
	return repo
}
