package eventRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"wintermarket/database"
	"wintermarket/models"
	"wintermarket/utils"
)

// EventRepository defines persistence operations for market events and
// their booth slots.
type EventRepository interface {
	Create(ctx context.Context, event models.Event) (string, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetByDate(ctx context.Context, date string) (*models.Event, error)
	GetAll(ctx context.Context) ([]models.Event, error)
	DeleteAll(ctx context.Context) error

	// HoldSlot marks the first available slot of the given vendor type as
	// held and returns it. Returns mongo.ErrNoDocuments when sold out.
	HoldSlot(ctx context.Context, eventID string, vendorType models.VendorType) (*models.BoothSlot, error)
	ReleaseSlot(ctx context.Context, eventID, slotID string) error
	AvailableSlotCounts(ctx context.Context) (map[string]int, error)
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo returns a new EventRepository instance using MongoDB.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database("wintermarket")
	repo := &mongoEventRepo{
		coll: db.Collection("events"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure event indexes", zap.Error(err))
	}
	return repo
}
