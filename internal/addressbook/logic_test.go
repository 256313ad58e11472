package addressbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNextOccurrence covers the year rollover and the Feb 29 policy.
func TestNextOccurrence(t *testing.T) {
	leapling := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		today     time.Time
		birthDate time.Time
		expected  time.Time
	}{
		{
			name:      "LaterThisYear",
			today:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			birthDate: time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC),
			expected:  time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "AlreadyPassed",
			today:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			birthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			expected:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Today",
			today:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			birthDate: time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC),
			expected:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "LeaplingInLeapYear",
			today:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			birthDate: leapling,
			expected:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "LeaplingInCommonYear",
			today:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			birthDate: leapling,
			expected:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "LeaplingOnMarchFirst",
			today:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			birthDate: leapling,
			expected:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "LeaplingAfterMarchFirst",
			today:     time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			birthDate: leapling,
			expected:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "LeaplingRollsIntoLeapYear",
			today:     time.Date(2027, 3, 2, 0, 0, 0, 0, time.UTC),
			birthDate: leapling,
			expected:  time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextOccurrence(tt.today, tt.birthDate))
		})
	}
}

// TestCalendarDay_IgnoresZone makes sure "today" is the caller's wall-clock date.
func TestCalendarDay_IgnoresZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	lateEvening := time.Date(2025, 6, 15, 23, 30, 0, 0, tokyo)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), calendarDay(lateEvening))
}

func TestDaysBetween_AcrossDST(t *testing.T) {
	// Paris switches to summer time on 2025-03-30.
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	before := calendarDay(time.Date(2025, 3, 29, 12, 0, 0, 0, paris))
	after := calendarDay(time.Date(2025, 3, 31, 12, 0, 0, 0, paris))

	assert.Equal(t, 2, daysBetween(before, after))
}
