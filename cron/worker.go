package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"wintermarket/config"
	bookingRepo "wintermarket/database/repository/booking"
	eventRepo "wintermarket/database/repository/event"
	"wintermarket/utils"
)

// Sweeper periodically releases booth slots held by reservations whose
// checkout never completed, so abandoned carts do not block capacity.
type Sweeper struct {
	Events   eventRepo.EventRepository
	Bookings bookingRepo.VendorBookingRepository

	cron *cron.Cron
}

// NewSweeper constructs a Sweeper over the given repositories.
func NewSweeper(events eventRepo.EventRepository, bookings bookingRepo.VendorBookingRepository) *Sweeper {
	return &Sweeper{
		Events:   events,
		Bookings: bookings,
		cron:     cron.New(),
	}
}

// Start schedules the sweep every five minutes and runs one sweep
// immediately to clear leftovers from a previous run.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("@every 5m", s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	go s.sweep()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// sweep deletes abandoned bookings older than the configured hold window
// and returns their slots to the pool. Bookings that completed checkout
// are excluded by the repository filter; their payment is authorized and
// only captured by the organizer later.
func (s *Sweeper) sweep() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	holdMinutes := config.AppConfig.BookingHoldMinutes
	if holdMinutes <= 0 {
		holdMinutes = 30
	}
	cutoff := time.Now().Add(-time.Duration(holdMinutes) * time.Minute)

	stale, err := s.Bookings.FindStaleUnpaid(ctx, cutoff)
	if err != nil {
		logger.Error("sweep: failed to list stale bookings", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	released := 0
	for _, booking := range stale {
		if err := s.Events.ReleaseSlot(ctx, booking.EventID, booking.BoothSlotID); err != nil {
			logger.Error("sweep: failed to release slot",
				zap.String("booking", booking.ID),
				zap.String("event", booking.EventID),
				zap.Error(err))
			continue
		}
		if err := s.Bookings.DeleteByID(ctx, booking.ID); err != nil {
			logger.Error("sweep: failed to delete booking",
				zap.String("booking", booking.ID), zap.Error(err))
			continue
		}
		released++
	}

	logger.Info("sweep: released expired holds",
		zap.Int("stale", len(stale)), zap.Int("released", released))
}
