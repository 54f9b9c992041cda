package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dentalcare-app/clinic-api/internal/httperr"
)

// Monday 2025-01-06, mid-morning.
var testNow = time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, code), "want code %q, got %v", code, err)
}

func TestValidateBookingTime(t *testing.T) {
	valid := time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC) // Wednesday

	require.NoError(t, ValidateBookingTime(valid, testNow))

	t.Run("past", func(t *testing.T) {
		past := testNow.Add(-time.Hour)
		requireCode(t, ValidateBookingTime(past, testNow), httperr.CodeTimeInPast)
	})

	t.Run("before opening", func(t *testing.T) {
		early := time.Date(2025, 1, 8, 8, 30, 0, 0, time.UTC)
		requireCode(t, ValidateBookingTime(early, testNow), httperr.CodeOutsideBusinessHours)
	})

	t.Run("closing hour itself not bookable", func(t *testing.T) {
		closing := time.Date(2025, 1, 8, 18, 0, 0, 0, time.UTC)
		requireCode(t, ValidateBookingTime(closing, testNow), httperr.CodeOutsideBusinessHours)
	})

	t.Run("last valid start", func(t *testing.T) {
		last := time.Date(2025, 1, 8, 17, 30, 0, 0, time.UTC)
		require.NoError(t, ValidateBookingTime(last, testNow))
	})

	t.Run("weekend", func(t *testing.T) {
		saturday := time.Date(2025, 1, 11, 14, 30, 0, 0, time.UTC)
		requireCode(t, ValidateBookingTime(saturday, testNow), httperr.CodeWeekendClosed)
	})

	t.Run("misaligned minutes", func(t *testing.T) {
		quarter := time.Date(2025, 1, 8, 14, 15, 0, 0, time.UTC)
		requireCode(t, ValidateBookingTime(quarter, testNow), httperr.CodeMisalignedMinute)
	})
}

// The first failing rule wins: a time that is simultaneously in the past,
// on a weekend and misaligned reports only the past.
func TestValidateBookingTimeRuleOrder(t *testing.T) {
	pastSaturday := time.Date(2025, 1, 4, 20, 15, 0, 0, time.UTC)
	requireCode(t, ValidateBookingTime(pastSaturday, testNow), httperr.CodeTimeInPast)

	// Future weekend outside hours: hours are checked before the weekday.
	saturdayNight := time.Date(2025, 1, 11, 20, 0, 0, 0, time.UTC)
	requireCode(t, ValidateBookingTime(saturdayNight, testNow), httperr.CodeOutsideBusinessHours)
}

func TestNormalize(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	// 11:30 UTC is 14:30 in Moscow; seconds are dropped.
	raw := time.Date(2025, 11, 5, 11, 30, 42, 999, time.UTC)
	got := Normalize(raw, moscow)

	require.Equal(t, 14, got.Hour())
	require.Equal(t, 30, got.Minute())
	require.Zero(t, got.Second())
	require.Zero(t, got.Nanosecond())
	require.Equal(t, moscow.String(), got.Location().String())
}

func TestIsBookable(t *testing.T) {
	require.True(t, IsBookable(time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC), testNow))
	require.False(t, IsBookable(time.Date(2025, 1, 8, 9, 10, 0, 0, time.UTC), testNow))
}
