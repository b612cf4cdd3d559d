package engine

import (
	"testing"
	"time"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestElapsedWholeDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		assignedAt time.Time
		days       int
		hours      int
	}{
		{"twenty_five_hours", now.Add(-25 * time.Hour), 1, 1},
		{"twenty_three_hours", now.Add(-23 * time.Hour), 0, 23},
		{"exactly_one_day", now.Add(-24 * time.Hour), 1, 0},
		{"three_days", now.AddDate(0, 0, -3), 3, 0},
		{"same_instant", now, 0, 0},
		{"future_assignment", now.Add(time.Hour), 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			span := Elapsed(now, tt.assignedAt)
			require.Equal(t, tt.days, span.Days)
			require.Equal(t, tt.hours, span.Hours)
		})
	}
}

func TestElapsedAcrossMonthBoundary(t *testing.T) {
	assignedAt := time.Date(2024, 1, 30, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)

	span := Elapsed(now, assignedAt)
	require.Equal(t, 3, span.Days)
	require.Equal(t, 0, span.Hours)
}

func TestElapsedAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// The night of 2024-03-31 is only 23 wall-clock hours long.
	assignedAt := time.Date(2024, 3, 30, 12, 0, 0, 0, loc)
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, loc)

	span := Elapsed(now, assignedAt)
	require.Equal(t, 1, span.Days)
	require.Equal(t, 0, span.Hours)
}

func TestRemainingCountdown(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		assignedAt time.Time
		limit      int64
		days       int
		hours      int
		ok         bool
	}{
		{"passed", now.Add(-90000 * time.Second), entities.DefaultTimeLimitSeconds, 0, 0, false},
		{"almost_full_day_left", now.Add(-1000 * time.Second), entities.DefaultTimeLimitSeconds, 0, 23, true},
		{"exactly_at_deadline", now.Add(-86400 * time.Second), entities.DefaultTimeLimitSeconds, 0, 0, false},
		{"week_limit", now.Add(-86400 * time.Second), 7 * 86400, 6, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			span, ok := Remaining(now, tt.assignedAt, tt.limit)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.days, span.Days)
			require.Equal(t, tt.hours, span.Hours)
		})
	}
}
