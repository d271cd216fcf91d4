package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRelative(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{
			name:     "earlier today",
			ts:       time.Date(2025, 6, 15, 8, 5, 9, 0, time.UTC),
			expected: "Today, at 08:05:09",
		},
		{
			name:     "yesterday",
			ts:       time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC),
			expected: "Yesterday, at 23:59:59",
		},
		{
			name: "25 hours ago can still be yesterday",
			ts:   now.Add(-25 * time.Hour),
			// 2025-06-14 13:30, one calendar day back.
			expected: "Yesterday, at 13:30:00",
		},
		{
			name:     "two days ago uses the full date",
			ts:       time.Date(2025, 6, 13, 10, 0, 0, 0, time.UTC),
			expected: "13 Jun 2025, 10:00:00",
		},
		{
			name:     "last year uses the full date",
			ts:       time.Date(2024, 12, 31, 18, 45, 30, 0, time.UTC),
			expected: "31 Dec 2024, 18:45:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRelative(tt.ts, now))
		})
	}
}

func TestFormatRelativeAcrossMonthBoundary(t *testing.T) {
	// First of the month: yesterday is in the previous month.
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	ts := time.Date(2025, 6, 30, 20, 15, 0, 0, time.UTC)
	assert.Equal(t, "Yesterday, at 20:15:00", formatRelative(ts, now))
}

func TestFormatRelativeConvertsToLocalDay(t *testing.T) {
	// 23:30 UTC on the 14th is already the 15th at UTC+7, so against a
	// UTC+7 "now" on the 15th it renders as today.
	loc := time.FixedZone("UTC+7", 7*3600)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, loc)
	ts := time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "Today, at 06:30:00", formatRelative(ts, now))
}
