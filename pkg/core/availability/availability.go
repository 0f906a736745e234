// Package availability implements the weekly availability matrix and
// the day/time-slot compatibility rules used by the query engine.
//
// A volunteer stores one value per tournament day (Thursday through
// Sunday): not_available, morning, afternoon, or all_day. A stored
// all_day satisfies a request for any slot; morning and afternoon
// satisfy only themselves; not_available satisfies nothing.
package availability

import "github.com/nwainaina/fairway-crew/pkg/db"

// TimeSlots that may appear in a query
var TimeSlots = []string{
	db.AvailabilityMorning,
	db.AvailabilityAfternoon,
	db.AvailabilityAllDay,
}

// ValidDay reports whether day is one of the tournament days
func ValidDay(day string) bool {
	for _, d := range db.TournamentDays {
		if d == day {
			return true
		}
	}
	return false
}

// ValidSlot reports whether slot is a queryable time slot
func ValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// slotCompatible reports whether a stored availability value satisfies
// a requested slot
func slotCompatible(stored, requested string) bool {
	if stored == db.AvailabilityNotAvailable {
		return false
	}
	if stored == db.AvailabilityAllDay {
		return true
	}
	return stored == requested
}

// IsAvailable reports whether the volunteer can serve the requested
// (day, slot) combination
func IsAvailable(v *db.Volunteer, day, slot string) bool {
	return slotCompatible(v.Availability(day), slot)
}

// MatchesDays reports whether the volunteer is available at all on any
// of the requested days. An empty day list matches everyone.
func MatchesDays(v *db.Volunteer, days []string) bool {
	if len(days) == 0 {
		return true
	}
	for _, day := range days {
		if v.Availability(day) != db.AvailabilityNotAvailable {
			return true
		}
	}
	return false
}

// MatchesDaySlots reports whether the volunteer satisfies any requested
// (day, slot) pairing, OR'd across the cross-product of days and slots.
// With no slots requested this degrades to MatchesDays. A slot list
// without any day has no effect and matches everyone; slot filters are
// only meaningful combined with a day filter.
func MatchesDaySlots(v *db.Volunteer, days, slots []string) bool {
	if len(days) == 0 {
		return true
	}
	if len(slots) == 0 {
		return MatchesDays(v, days)
	}
	for _, day := range days {
		for _, slot := range slots {
			if IsAvailable(v, day, slot) {
				return true
			}
		}
	}
	return false
}

// Label renders a stored availability value as the human-readable form
// used in exports
func Label(value string) string {
	switch value {
	case db.AvailabilityMorning:
		return "Morning"
	case db.AvailabilityAfternoon:
		return "Afternoon"
	case db.AvailabilityAllDay:
		return "All Day"
	default:
		return "Not Available"
	}
}
