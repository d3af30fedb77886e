package models

import "time"

// Event represents one market day with bookable booth spots.
type Event struct {
	ID            string      `bson:"id" json:"id"`
	Name          string      `bson:"name" json:"name"`
	Date          string      `bson:"date" json:"date"` // "YYYY-MM-DD"
	Location      string      `bson:"location" json:"location"`
	Description   string      `bson:"description,omitempty" json:"description"`
	Price         float64     `bson:"price" json:"price"` // price per regular spot, USD
	NumberOfSpots int         `bson:"number_of_spots" json:"number_of_spots"`
	BoothSlots    []BoothSlot `bson:"booth_slots,omitempty" json:"booth_slots,omitempty"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updated_at"`
}

// AvailableSlotsCount returns the number of booth slots still open.
func (e Event) AvailableSlotsCount() int {
	count := 0
	for _, s := range e.BoothSlots {
		if s.IsAvailable {
			count++
		}
	}
	return count
}

// BoothSlot is a single numbered spot within an event.
type BoothSlot struct {
	ID          string `bson:"id" json:"id"`
	SpotNumber  string `bson:"spot_number" json:"spot_number"`
	VendorType  string `bson:"vendor_type" json:"vendor_type"` // "regular" or "food"
	IsAvailable bool   `bson:"is_available" json:"is_available"`
}

// CalendarEvent is the trimmed event view served to the calendar page.
type CalendarEvent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Date           string `json:"date"`
	AvailableSlots int    `json:"available_slots"`
}
