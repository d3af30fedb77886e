package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"wintermarket/config"
	"wintermarket/database"
	eventRepo "wintermarket/database/repository/event"
	"wintermarket/models"
	"wintermarket/services/booking"
	"wintermarket/services/registry"
)

// Seeds one event per market date: 26 numbered regular spots plus 2 food
// truck spots each. Clears existing events first, so run it only against
// a fresh season.
func main() {
	config.LoadConfig()
	database.InitDB()

	repo := eventRepo.NewMongoEventRepo()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear events collection: %v", err)
	}

	regularSpots := config.AppConfig.DefaultDailyCapacity
	foodSpots := config.AppConfig.FoodTruckCapacity

	reg := registry.Default()
	created := 0
	for _, window := range reg.Windows() {
		for _, date := range window.Dates {
			slots := make([]models.BoothSlot, 0, regularSpots+foodSpots)
			for i := 1; i <= regularSpots; i++ {
				slots = append(slots, models.BoothSlot{
					ID:          uuid.New().String(),
					SpotNumber:  fmt.Sprintf("R%02d", i),
					VendorType:  string(models.VendorTypeRegular),
					IsAvailable: true,
				})
			}
			for i := 1; i <= foodSpots; i++ {
				slots = append(slots, models.BoothSlot{
					ID:          uuid.New().String(),
					SpotNumber:  fmt.Sprintf("F%02d", i),
					VendorType:  string(models.VendorTypeFood),
					IsAvailable: true,
				})
			}

			event := models.Event{
				Name:          window.Theme,
				Date:          date,
				Location:      "Downtown Market Grounds",
				Description:   fmt.Sprintf("%s (%s), %s", window.Theme, window.Subtheme, booking.EventTimeFor(date)),
				Price:         float64(booking.RegularVendorPrice),
				NumberOfSpots: len(slots),
				BoothSlots:    slots,
			}
			id, err := repo.Create(ctx, event)
			if err != nil {
				log.Fatalf("Failed to create event for %s: %v", date, err)
			}
			created++
			fmt.Printf("created %s  %-20s %s\n", date, window.Theme, id)
		}
	}

	fmt.Printf("seeded %d events\n", created)
}
