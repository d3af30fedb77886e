package booking

import (
	"fmt"
	"time"
)

// parseDate interprets an ISO "YYYY-MM-DD" string as a UTC calendar date.
func parseDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EventTimeFor returns the market hours for a date: Sunday markets run
// 12-5 PM, Friday and Saturday night markets run 4-10 PM. Fixed business
// rule, not configurable per event.
func EventTimeFor(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}
	if t.Weekday() == time.Sunday {
		return "12:00 PM - 5:00 PM"
	}
	return "4:00 PM - 10:00 PM"
}

// MarketLabelFor combines the weekday name with the market kind:
// "Sunday Day Market", "Friday Night Market", "Saturday Night Market",
// or "<Day> Market" for any other weekday.
func MarketLabelFor(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}
	day := t.Weekday().String()
	switch t.Weekday() {
	case time.Sunday:
		return day + " Day Market"
	case time.Friday, time.Saturday:
		return day + " Night Market"
	default:
		return day + " Market"
	}
}

// FormattedDate renders a date as "Fri, Dec 12".
func FormattedDate(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}
	return t.Format("Mon, Jan 2")
}

// daySuffix returns the English ordinal suffix for a day of the month.
func daySuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FullFormattedDate renders a date as "Friday, December 12th, 2025".
func FullFormattedDate(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s, %s %d%s, %d",
		t.Weekday().String(), t.Month().String(), t.Day(), daySuffix(t.Day()), t.Year())
}
