package models

// ThemeWindow represents one themed market weekend.
// The theme table is fixed configuration data and never mutated at runtime.
type ThemeWindow struct {
	Theme    string   `json:"theme"`
	Subtheme string   `json:"subtheme"`
	Dates    []string `json:"dates"` // ISO dates, chronological, pairwise disjoint across windows
}

// DateAvailability is the derived view of a single calendar date.
type DateAvailability struct {
	Date           string       `json:"date"`
	Theme          *ThemeWindow `json:"theme,omitempty"`
	AvailableSlots int          `json:"availableSlots"`
}

// Bookable reports whether a visitor may select this date. A date outside
// the market series is never bookable regardless of slot count.
func (d DateAvailability) Bookable() bool {
	return d.Theme != nil && d.AvailableSlots > 0
}
