package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsGrid(t *testing.T) {
	slots := GenerateSlots(testNow, DefaultDaysAhead, nil)

	require.Len(t, slots, MaxSlots)

	// Tomorrow is Tuesday; the first ten slots all fall on it.
	first := time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC)
	require.Equal(t, first, slots[0])
	require.Equal(t, time.Date(2025, 1, 7, 13, 30, 0, 0, time.UTC), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		require.Equal(t, SlotInterval, slots[i].Sub(slots[i-1]))
	}
}

func TestGenerateSlotsSkipsWeekends(t *testing.T) {
	// Friday: the window opens on Saturday, so the first candidates are
	// Monday morning.
	friday := time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)

	slots := GenerateSlots(friday, DefaultDaysAhead, nil)

	require.NotEmpty(t, slots)
	require.Equal(t, time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC), slots[0])
	for _, s := range slots {
		wd := s.Weekday()
		require.NotEqual(t, time.Saturday, wd)
		require.NotEqual(t, time.Sunday, wd)
	}
}

func TestGenerateSlotsSkipsOccupied(t *testing.T) {
	taken := time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC)

	slots := GenerateSlots(testNow, DefaultDaysAhead, func(s time.Time) bool {
		return s.Equal(taken)
	})

	require.Len(t, slots, MaxSlots)
	require.Equal(t, time.Date(2025, 1, 7, 9, 30, 0, 0, time.UTC), slots[0])
	for _, s := range slots {
		require.False(t, s.Equal(taken))
	}
	// The gap shifts the window one slot further.
	require.Equal(t, time.Date(2025, 1, 7, 14, 0, 0, 0, time.UTC), slots[len(slots)-1])
}

func TestGenerateSlotsShortWindow(t *testing.T) {
	// One day ahead of Friday is Saturday only: nothing bookable.
	friday := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	require.Empty(t, GenerateSlots(friday, 1, nil))

	// Non-positive horizon falls back to the default.
	slots := GenerateSlots(testNow, 0, nil)
	require.Len(t, slots, MaxSlots)
}
