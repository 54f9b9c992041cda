package appointment

import (
	"time"

	"github.com/dentalcare-app/clinic-api/internal/httperr"
)

// ===============================
// Clinic calendar rules
// ===============================

const (
	// Bookable hours: [OpeningHour, ClosingHour). 17:30 is the last
	// valid start, 18:00 itself is not bookable.
	OpeningHour = 9
	ClosingHour = 18

	SlotInterval = 30 * time.Minute

	// Minimum advance notice for a patient-initiated cancellation.
	CancelLeadTime = 24 * time.Hour
)

// Normalize brings a scheduled instant into the clinic timezone and
// truncates it to the minute, so exact-equality slot comparison is well
// defined no matter what offset the caller sent.
func Normalize(t time.Time, loc *time.Location) time.Time {
	return t.In(loc).Truncate(time.Minute)
}

// ValidateBookingTime checks a proposed instant against the calendar
// rules, in order. The first failing rule determines the error. Used
// identically by creation and reschedule.
func ValidateBookingTime(t, now time.Time) error {
	t = t.In(now.Location())

	if t.Before(now) {
		return httperr.ErrBusinessf(
			httperr.CodeTimeInPast,
			"cannot book an appointment in the past",
		)
	}

	if t.Hour() < OpeningHour || t.Hour() >= ClosingHour {
		return httperr.ErrBusinessf(
			httperr.CodeOutsideBusinessHours,
			"appointments are only available between %d:00 and %d:00", OpeningHour, ClosingHour,
		)
	}

	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return httperr.ErrBusinessf(
			httperr.CodeWeekendClosed,
			"the clinic is closed on weekends",
		)
	}

	if m := t.Minute(); m != 0 && m != 30 {
		return httperr.ErrBusinessf(
			httperr.CodeMisalignedMinute,
			"appointments start at :00 or :30 only",
		)
	}

	return nil
}

func IsBookable(t, now time.Time) bool {
	return ValidateBookingTime(t, now) == nil
}
