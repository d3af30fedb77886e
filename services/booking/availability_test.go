package booking

import (
	"testing"

	"wintermarket/services/registry"
)

func newTestView() *AvailabilityView {
	return &AvailabilityView{
		Registry:        registry.Default(),
		DefaultCapacity: 26,
	}
}

func TestAvailabilityFor(t *testing.T) {
	view := newTestView()
	counts := map[string]int{
		"2025-12-12": 5,
		"2025-12-13": 0,
	}

	tests := []struct {
		name      string
		date      string
		wantSlots int
		wantTheme bool
	}{
		{name: "counted date", date: "2025-12-12", wantSlots: 5, wantTheme: true},
		{name: "sold out date", date: "2025-12-13", wantSlots: 0, wantTheme: true},
		{name: "uncounted date falls back to capacity", date: "2025-12-14", wantSlots: 26, wantTheme: true},
		{name: "off-calendar date", date: "2025-12-15", wantSlots: 26, wantTheme: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avail := view.For(tt.date, counts)
			if avail.AvailableSlots != tt.wantSlots {
				t.Errorf("AvailableSlots = %d, want %d", avail.AvailableSlots, tt.wantSlots)
			}
			if (avail.Theme != nil) != tt.wantTheme {
				t.Errorf("Theme presence = %v, want %v", avail.Theme != nil, tt.wantTheme)
			}
		})
	}
}

func TestBookable(t *testing.T) {
	view := newTestView()
	counts := map[string]int{"2025-12-13": 0}

	if !view.Bookable("2025-12-12", counts) {
		t.Error("in-series date with capacity should be bookable")
	}
	if view.Bookable("2025-12-13", counts) {
		t.Error("sold-out date should not be bookable")
	}
	if view.Bookable("2025-12-15", counts) {
		t.Error("date outside the theme windows should not be bookable")
	}
}
