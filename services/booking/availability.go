package booking

import (
	"wintermarket/models"
	"wintermarket/services/registry"
)

// AvailabilityView combines the theme registry with externally sourced
// per-date slot counts. The slot counts are resolved into a map before the
// view is evaluated; the view itself does no I/O.
type AvailabilityView struct {
	Registry        *registry.Registry
	DefaultCapacity int
}

// For derives the availability of a single date. Dates with no slot-count
// entry fall back to the configured default capacity.
func (v *AvailabilityView) For(date string, slotCounts map[string]int) models.DateAvailability {
	avail := models.DateAvailability{
		Date:  date,
		Theme: v.Registry.ThemeForDate(date),
	}
	if count, ok := slotCounts[date]; ok {
		avail.AvailableSlots = count
	} else {
		avail.AvailableSlots = v.DefaultCapacity
	}
	return avail
}

// Bookable reports whether a date may be added to a selection: it must
// belong to a theme window and have at least one open slot.
func (v *AvailabilityView) Bookable(date string, slotCounts map[string]int) bool {
	return v.For(date, slotCounts).Bookable()
}
