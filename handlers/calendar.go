package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wintermarket/config"
	"wintermarket/models"
	"wintermarket/services/booking"
	"wintermarket/services/registry"
	"wintermarket/utils"
)

// GetCalendarEvents returns the season's events with their remaining
// slot counts. The computed payload is cached briefly so calendar
// traffic does not hammer the database.
func GetCalendarEvents(c *gin.Context) {
	ctx := c.Request.Context()
	cache := utils.GetCacheClient()

	if cached, err := cache.Get(ctx, utils.CalendarCacheKey).Result(); err == nil {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	events, err := EventRepo.GetAll(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch events", err.Error())
		return
	}

	calendar := make([]models.CalendarEvent, 0, len(events))
	for _, event := range events {
		calendar = append(calendar, models.CalendarEvent{
			ID:             event.ID,
			Name:           event.Name,
			Date:           event.Date,
			AvailableSlots: event.AvailableSlotsCount(),
		})
	}

	payload, err := json.Marshal(calendar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode calendar", "details": err.Error()})
		return
	}
	if err := cache.Set(ctx, utils.CalendarCacheKey, payload, utils.CalendarCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache calendar payload", zap.Error(err))
	}

	c.Data(http.StatusOK, "application/json", payload)
}

// GetEvent returns one event with its booth slots.
func GetEvent(c *gin.Context) {
	event, err := EventRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetAvailability returns one entry per season date combining the theme
// window with remaining capacity, the shape the calendar renders from.
func GetAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := EventRepo.AvailableSlotCounts(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch availability", err.Error())
		return
	}

	reg := registry.Default()
	view := &booking.AvailabilityView{
		Registry:        reg,
		DefaultCapacity: config.AppConfig.DefaultDailyCapacity,
	}

	dates := reg.Dates()
	availability := make([]models.DateAvailability, 0, len(dates))
	for _, date := range dates {
		availability = append(availability, view.For(date, counts))
	}

	c.JSON(http.StatusOK, gin.H{
		"season_start": reg.SeasonStart(),
		"season_end":   reg.SeasonEnd(),
		"dates":        availability,
	})
}

// GetThemeWindows returns the season's themed weekends as published.
func GetThemeWindows(c *gin.Context) {
	c.JSON(http.StatusOK, registry.Default().Windows())
}
