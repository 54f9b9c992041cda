package timezone

import "time"

// All clinics in the network operate on a single timezone; scheduled
// times are normalized into it before any calendar rule runs.
const DefaultTimezone = "Europe/Moscow"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}
