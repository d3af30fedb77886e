package handlers

import (
	"wintermarket/config"
	bookingRepo "wintermarket/database/repository/booking"
	eventRepo "wintermarket/database/repository/event"
	"wintermarket/services/booking"
	"wintermarket/services/registry"
	"wintermarket/services/sheets"
	"wintermarket/services/storage"
	"wintermarket/utils"
)

var (
	EventRepo   eventRepo.EventRepository
	BookingRepo bookingRepo.VendorBookingRepository

	SelectionSvc   booking.SelectionService
	ReservationSvc booking.ReservationService
	StorageSvc     storage.StorageService
)

// InitHandlers wires the handler package's services. Must run after the
// database and redis connections are initialized.
func InitHandlers() {
	EventRepo = eventRepo.NewMongoEventRepo()
	BookingRepo = bookingRepo.NewMongoBookingRepo()

	availability := &booking.AvailabilityView{
		Registry:        registry.Default(),
		DefaultCapacity: config.AppConfig.DefaultDailyCapacity,
	}
	SelectionSvc = &booking.DefaultSelectionService{
		Cache:        utils.GetSelectionCacheClient(),
		Events:       EventRepo,
		Availability: availability,
	}
	ReservationSvc = &booking.DefaultReservationService{
		Events:   EventRepo,
		Bookings: BookingRepo,
		Payments: booking.NewPaymentHandler(utils.GetLogger()),
		Sheets:   sheets.NewClient(config.AppConfig.SheetsWebhookURL),
	}
}
