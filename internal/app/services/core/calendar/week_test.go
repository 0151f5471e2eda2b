package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestWeekStart_AlwaysMondayMidnight(t *testing.T) {
	loc := mustLoadLocation(t, "Europe/Warsaw")
	// 2024-06-09 is a Sunday, the following days cover every weekday.
	base := time.Date(2024, time.June, 9, 15, 30, 0, 0, loc)

	for day := 0; day < 7; day++ {
		now := base.AddDate(0, 0, day)
		for offset := -60; offset <= 60; offset++ {
			monday := WeekStart(now, offset)

			assert.Equal(t, time.Monday, monday.Weekday(), "now=%s offset=%d", now, offset)
			assert.Zero(t, monday.Hour())
			assert.Zero(t, monday.Minute())
			assert.Zero(t, monday.Second())
			assert.Zero(t, monday.Nanosecond())
			assert.Equal(t, loc, monday.Location())
		}
	}
}

func TestWeekStart_CurrentWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "wednesday",
			now:  time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday itself",
			now:  time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the previous monday",
			now:  time.Date(2024, time.June, 16, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses a year boundary",
			now:  time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses a month boundary",
			now:  time.Date(2024, time.March, 2, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(WeekStart(tt.now, 0)), "got %s", WeekStart(tt.now, 0))
		})
	}
}

func TestWeekStart_AdjacentOffsetsAreSevenDaysApart(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)

	current := WeekStart(now, 0)
	next := WeekStart(now, 1)
	previous := WeekStart(now, -1)

	assert.Equal(t, 7*24*time.Hour, next.Sub(current))
	assert.Equal(t, 7*24*time.Hour, current.Sub(previous))
}

func TestWeekStart_AcrossDaylightSavingTransitions(t *testing.T) {
	loc := mustLoadLocation(t, "Europe/Warsaw")

	t.Run("spring forward", func(t *testing.T) {
		// Clocks move forward on Sunday 2024-03-31.
		now := time.Date(2024, time.March, 27, 12, 0, 0, 0, loc)
		next := WeekStart(now, 1)

		assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, loc), next)
		assert.Equal(t, 7*24*time.Hour-time.Hour, next.Sub(WeekStart(now, 0)))
	})

	t.Run("fall back", func(t *testing.T) {
		// Clocks move back on Sunday 2024-10-27.
		now := time.Date(2024, time.October, 30, 12, 0, 0, 0, loc)
		previous := WeekStart(now, -1)

		assert.Equal(t, time.Date(2024, time.October, 21, 0, 0, 0, 0, loc), previous)
		assert.Zero(t, previous.Hour())
	})
}
