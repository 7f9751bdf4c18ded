package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		in   string
		want Timeframe
	}{
		{"LAST_WEEK", TimeframeLastWeek},
		{"last_month", TimeframeLastMonth},
		{" All_Time ", TimeframeAllTime},
		{"", TimeframeAllTime},
	}
	for _, tt := range tests {
		got, err := ParseTimeframe(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseTimeframe("yesterday")
	assert.Error(t, err)
}

func TestTimeframe_Cutoff(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	cutoff, ok := TimeframeLastWeek.Cutoff(now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 24, 12, 0, 0, 0, time.UTC), cutoff)

	// One calendar month back; March 31 normalizes past the end of February.
	cutoff, ok = TimeframeLastMonth.Cutoff(now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, -1, 0), cutoff)

	_, ok = TimeframeAllTime.Cutoff(now)
	assert.False(t, ok)
}

func TestTimeframe_Contains(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, TimeframeLastWeek.Contains(now.AddDate(0, 0, -7), now), "cutoff is inclusive")
	assert.True(t, TimeframeLastWeek.Contains(now.AddDate(0, 0, -1), now))
	assert.False(t, TimeframeLastWeek.Contains(now.AddDate(0, 0, -8), now))

	assert.True(t, TimeframeLastMonth.Contains(now.AddDate(0, 0, -20), now))
	assert.False(t, TimeframeLastMonth.Contains(now.AddDate(0, -2, 0), now))

	assert.True(t, TimeframeAllTime.Contains(now.AddDate(-10, 0, 0), now))

	// A missing match date only counts for all time.
	assert.False(t, TimeframeLastWeek.Contains(time.Time{}, now))
	assert.False(t, TimeframeLastMonth.Contains(time.Time{}, now))
	assert.True(t, TimeframeAllTime.Contains(time.Time{}, now))
}
