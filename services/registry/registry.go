package registry

import (
	"wintermarket/models"
)

// marketSeries is the canonical table of themed market weekends. The site
// runs Fri-Sun weekends from the opening weekend through late January.
// Configuration data: fixed at deployment, never mutated at runtime.
var marketSeries = []models.ThemeWindow{
	{
		Theme:    "THE FIRST TASTE",
		Subtheme: "cars, circus, wellness, music",
		Dates:    []string{"2025-12-12", "2025-12-13", "2025-12-14"},
	},
	{
		Theme:    "CARS",
		Subtheme: "Automotive showcase",
		Dates:    []string{"2025-12-19", "2025-12-20", "2025-12-21"},
	},
	{
		Theme:    "COMMUNITY SUPPORT",
		Subtheme: "donations for Gainesville + Alachua orgs",
		Dates:    []string{"2025-12-26", "2025-12-27", "2025-12-28"},
	},
	{
		Theme:    "CIRCUS",
		Subtheme: "Big top entertainment",
		Dates:    []string{"2026-01-02", "2026-01-03", "2026-01-04"},
	},
	{
		Theme:    "WELLNESS",
		Subtheme: "Health & mindfulness",
		Dates:    []string{"2026-01-09", "2026-01-10", "2026-01-11"},
	},
	{
		Theme:    "MUSIC SHOWCASE",
		Subtheme: "Big 2026 themed",
		Dates:    []string{"2026-01-16", "2026-01-17", "2026-01-18"},
	},
	{
		Theme:    "MEDIEVAL",
		Subtheme: "Knights & fantasy",
		Dates:    []string{"2026-01-23", "2026-01-24", "2026-01-25"},
	},
}

// Registry resolves calendar dates against the market series table.
type Registry struct {
	windows []models.ThemeWindow
	byDate  map[string]*models.ThemeWindow
}

// New builds a Registry over the given theme windows.
func New(windows []models.ThemeWindow) *Registry {
	r := &Registry{
		windows: windows,
		byDate:  make(map[string]*models.ThemeWindow),
	}
	for i := range windows {
		for _, d := range windows[i].Dates {
			r.byDate[d] = &windows[i]
		}
	}
	return r
}

// Default returns the registry for the current market series.
func Default() *Registry {
	return New(marketSeries)
}

// ThemeForDate returns the theme window containing the given ISO date, or
// nil when the date is not part of the series.
func (r *Registry) ThemeForDate(date string) *models.ThemeWindow {
	return r.byDate[date]
}

// Windows returns the ordered theme windows.
func (r *Registry) Windows() []models.ThemeWindow {
	return r.windows
}

// Dates returns every market date across all windows in series order.
func (r *Registry) Dates() []string {
	var dates []string
	for _, w := range r.windows {
		dates = append(dates, w.Dates...)
	}
	return dates
}

// SeasonStart returns the earliest bookable date of the series.
func (r *Registry) SeasonStart() string {
	if len(r.windows) == 0 || len(r.windows[0].Dates) == 0 {
		return ""
	}
	return r.windows[0].Dates[0]
}

// SeasonEnd returns the latest bookable date of the series.
func (r *Registry) SeasonEnd() string {
	if len(r.windows) == 0 {
		return ""
	}
	last := r.windows[len(r.windows)-1]
	if len(last.Dates) == 0 {
		return ""
	}
	return last.Dates[len(last.Dates)-1]
}

// InSeason reports whether the date falls within the season bounds.
// ISO dates compare correctly as strings.
func (r *Registry) InSeason(date string) bool {
	return date >= r.SeasonStart() && date <= r.SeasonEnd()
}
