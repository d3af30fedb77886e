package registry

import (
	"testing"
)

func TestThemeForDate(t *testing.T) {
	reg := Default()

	tests := []struct {
		name      string
		date      string
		wantTheme string
		wantNil   bool
	}{
		{name: "opening Friday", date: "2025-12-12", wantTheme: "THE FIRST TASTE"},
		{name: "opening Sunday", date: "2025-12-14", wantTheme: "THE FIRST TASTE"},
		{name: "cars weekend", date: "2025-12-20", wantTheme: "CARS"},
		{name: "final Sunday", date: "2026-01-25", wantTheme: "MEDIEVAL"},
		{name: "midweek gap", date: "2025-12-15", wantNil: true},
		{name: "before season", date: "2025-12-11", wantNil: true},
		{name: "after season", date: "2026-01-26", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := reg.ThemeForDate(tt.date)
			if tt.wantNil {
				if window != nil {
					t.Fatalf("ThemeForDate(%q) = %q, want nil", tt.date, window.Theme)
				}
				return
			}
			if window == nil {
				t.Fatalf("ThemeForDate(%q) = nil, want %q", tt.date, tt.wantTheme)
			}
			if window.Theme != tt.wantTheme {
				t.Errorf("ThemeForDate(%q) = %q, want %q", tt.date, window.Theme, tt.wantTheme)
			}
		})
	}
}

func TestSeasonBounds(t *testing.T) {
	reg := Default()

	if got := reg.SeasonStart(); got != "2025-12-12" {
		t.Errorf("SeasonStart() = %q, want 2025-12-12", got)
	}
	if got := reg.SeasonEnd(); got != "2026-01-25" {
		t.Errorf("SeasonEnd() = %q, want 2026-01-25", got)
	}
}

func TestDates(t *testing.T) {
	reg := Default()
	dates := reg.Dates()

	// 7 weekends, 3 days each.
	if len(dates) != 21 {
		t.Fatalf("Dates() returned %d dates, want 21", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if dates[i-1] >= dates[i] {
			t.Errorf("dates out of order: %q before %q", dates[i-1], dates[i])
		}
	}
}

func TestInSeason(t *testing.T) {
	reg := Default()

	// Midweek gaps are in season even though they are not bookable dates.
	inSeason := []string{"2025-12-12", "2025-12-15", "2026-01-25"}
	for _, d := range inSeason {
		if !reg.InSeason(d) {
			t.Errorf("InSeason(%q) = false, want true", d)
		}
	}
	outOfSeason := []string{"2025-12-11", "2026-01-26", "2025-06-01"}
	for _, d := range outOfSeason {
		if reg.InSeason(d) {
			t.Errorf("InSeason(%q) = true, want false", d)
		}
	}
}
