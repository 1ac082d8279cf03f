package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestToInstant(t *testing.T) {
	got, err := toInstant("09:30", refDate)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC), got)
}

func TestToInstant_EndOfDay(t *testing.T) {
	got, err := toInstant("24:00", refDate)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), got)
}

func TestToInstant_Malformed(t *testing.T) {
	for _, clock := range []string{"", "9am", "25:00", "12:60", "12-00"} {
		_, err := toInstant(clock, refDate)
		assert.Error(t, err, "clock %q", clock)
	}
}

func TestResolveWindow_SameDay(t *testing.T) {
	start, end, err := resolveWindow("09:00", "12:00", refDate)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 3.0, durationHours(start, end))
}

func TestResolveWindow_CrossesMidnight(t *testing.T) {
	start, end, err := resolveWindow("23:00", "02:00", refDate)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 16, 2, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 3.0, durationHours(start, end))
}

func TestResolveWindow_EqualClocksMeanFullDay(t *testing.T) {
	start, end, err := resolveWindow("10:00", "10:00", refDate)
	require.NoError(t, err)
	assert.Equal(t, 24.0, durationHours(start, end))
}

func TestResolveWindow_MidnightEndClock(t *testing.T) {
	start, end, err := resolveWindow("21:00", "24:00", refDate)
	require.NoError(t, err)
	assert.Equal(t, 3.0, durationHours(start, end))
	assert.True(t, end.After(start))
}

func TestDayStart(t *testing.T) {
	ts := time.Date(2025, 6, 15, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), dayStart(ts))
}
