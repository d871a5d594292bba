package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"08:00", 480, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"16:30:00", 990, false},
		{" 09:15 ", 555, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.minutes, got, "input %q", tt.in)
	}
}

func TestShiftMinutes(t *testing.T) {
	// end after start: plain difference
	assert.Equal(t, 480, ShiftMinutes(8*60, 16*60))
	// end before start: the shift crosses midnight
	assert.Equal(t, 480, ShiftMinutes(22*60, 6*60))
	// end equal to start wraps to a full day
	assert.Equal(t, 1440, ShiftMinutes(9*60, 9*60))
	// one minute short of a day
	assert.Equal(t, 1439, ShiftMinutes(9*60, 9*60-1))
}

func TestShiftLength(t *testing.T) {
	minutes, err := ShiftLength("08:00", "16:00")
	require.NoError(t, err)
	assert.Equal(t, 480, minutes)

	minutes, err = ShiftLength("22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, 480, minutes)

	_, err = ShiftLength("08:00", "25:00")
	assert.Error(t, err)

	_, err = ShiftLength("8am", "16:00")
	assert.Error(t, err)
}

func TestMatchesHours(t *testing.T) {
	assert.True(t, MatchesHours(480, 8))
	assert.True(t, MatchesHours(450, 7.5))
	assert.False(t, MatchesHours(481, 8))
	assert.False(t, MatchesHours(480, 7.5))
	// full-day wraparound shift against a 24h configuration
	assert.True(t, MatchesHours(1440, 24))
}

func TestShiftPayment(t *testing.T) {
	assert.InDelta(t, 120.0, ShiftPayment(15, 480), 1e-9)
	assert.InDelta(t, 112.5, ShiftPayment(15, 450), 1e-9)
	assert.InDelta(t, 0.0, ShiftPayment(0, 480), 1e-9)
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday("Monday"))
	assert.True(t, IsWeekday("Sunday"))
	assert.False(t, IsWeekday("monday"))
	assert.False(t, IsWeekday("Someday"))
	assert.False(t, IsWeekday(""))
}
