package core

import (
	"testing"
	"time"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange_InclusiveBothEnds(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	days, err := DateRange(start, end)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04"}, days)
}

func TestDateRange_SingleDay(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	days, err := DateRange(day, day)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01"}, days)
}

func TestDateRange_TimeOfDayIgnored(t *testing.T) {
	// A start late in the day and an end at midnight still cover whole days.
	start := time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	days, err := DateRange(start, end)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02"}, days)
}

func TestDateRange_MonthBoundary(t *testing.T) {
	start := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	days, err := DateRange(start, end)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, days)
}

func TestDateRange_StartAfterEnd(t *testing.T) {
	start := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	days, err := DateRange(start, end)

	assert.Nil(t, days)
	assert.ErrorIs(t, err, contract.ErrInvalidRange)
}

func TestDateRange_NoDuplicatesSorted(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	days, err := DateRange(start, end)

	require.NoError(t, err)
	require.Len(t, days, 31)
	seen := make(map[string]bool)
	for i, d := range days {
		assert.False(t, seen[d], "duplicate day %s", d)
		seen[d] = true
		if i > 0 {
			assert.Less(t, days[i-1], d)
		}
	}
}
