package models

// SelectionMode distinguishes the single-date and multi-date booking flows.
type SelectionMode string

const (
	SelectionModeSingle SelectionMode = "single"
	SelectionModeMulti  SelectionMode = "multi"
)

// Selection holds a visitor's chosen market dates for one session.
// Dates keep insertion order: the calendar badge shows "Nth selected",
// so display order is the visitor's click order, not calendar order.
type Selection struct {
	SessionID string        `json:"sessionId"`
	Mode      SelectionMode `json:"mode"`
	Dates     []string      `json:"dates"`
}

// Contains reports whether date is already part of the selection.
func (s *Selection) Contains(date string) bool {
	for _, d := range s.Dates {
		if d == date {
			return true
		}
	}
	return false
}

// Remove deletes date from the selection, preserving the order of the rest.
func (s *Selection) Remove(date string) {
	out := s.Dates[:0]
	for _, d := range s.Dates {
		if d != date {
			out = append(out, d)
		}
	}
	s.Dates = out
}

// IsEmpty reports whether no dates are selected.
func (s *Selection) IsEmpty() bool {
	return len(s.Dates) == 0
}
