package eventRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wintermarket/models"
)

// HoldSlot atomically flips the first available slot of the requested
// vendor type to unavailable and returns it. The filter and update run as
// one findOneAndUpdate so two concurrent reservations cannot hold the
// same spot.
func (r *mongoEventRepo) HoldSlot(ctx context.Context, eventID string, vendorType models.VendorType) (*models.BoothSlot, error) {
	filter := bson.M{
		"id": eventID,
		"booth_slots": bson.M{"$elemMatch": bson.M{
			"vendor_type":  string(vendorType),
			"is_available": true,
		}},
	}
	update := bson.M{"$set": bson.M{"booth_slots.$.is_available": false}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before models.Event
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&before); err != nil {
		return nil, err
	}

	// The pre-image still shows the slot as available; pick the first one,
	// which is the positional match the update flipped.
	for _, slot := range before.BoothSlots {
		if slot.VendorType == string(vendorType) && slot.IsAvailable {
			held := slot
			held.IsAvailable = false
			return &held, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// ReleaseSlot marks a held slot available again.
func (r *mongoEventRepo) ReleaseSlot(ctx context.Context, eventID, slotID string) error {
	filter := bson.M{"id": eventID, "booth_slots.id": slotID}
	update := bson.M{"$set": bson.M{"booth_slots.$.is_available": true}}
	_, err := r.coll.UpdateOne(ctx, filter, update)
	return err
}

// AvailableSlotCounts returns a date -> open-slot-count map across all events.
func (r *mongoEventRepo) AvailableSlotCounts(ctx context.Context) (map[string]int, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int)
	for cursor.Next(ctx) {
		var event models.Event
		if err := cursor.Decode(&event); err != nil {
			return nil, err
		}
		counts[event.Date] = event.AvailableSlotsCount()
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
