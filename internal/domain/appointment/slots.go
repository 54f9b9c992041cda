package appointment

import "time"

const (
	DefaultDaysAhead = 7
	MaxSlots         = 10
)

// GenerateSlots walks the booking grid starting tomorrow through
// daysAhead days inclusive, skipping weekends, and returns the first
// MaxSlots instants not rejected by the occupied predicate, in
// chronological order. The result is advisory availability data, not a
// reservation: a race between two callers for the same slot is settled
// by the creation conflict check.
//
// Occupancy is exact equality on the slot start instant. Procedure
// duration is not consulted, so a long procedure still blocks only its
// starting slot.
func GenerateSlots(now time.Time, daysAhead int, occupied func(time.Time) bool) []time.Time {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	loc := now.Location()
	slots := make([]time.Time, 0, MaxSlots)

	for day := 1; day <= daysAhead; day++ {
		d := time.Date(now.Year(), now.Month(), now.Day()+day, 0, 0, 0, 0, loc)

		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		for hour := OpeningHour; hour < ClosingHour; hour++ {
			for _, minute := range []int{0, 30} {
				slot := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)

				if occupied != nil && occupied(slot) {
					continue
				}

				slots = append(slots, slot)
				if len(slots) == MaxSlots {
					return slots
				}
			}
		}
	}

	return slots
}
