package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "09:30", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "trailing seconds are truncated", input: "09:30:00", want: "09:30"},
		{name: "trailing seconds with value", input: "14:05:59", want: "14:05"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "10:61", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 8, 30, 14, 37, 55, 0, time.UTC)
	assert.Equal(t, TimeString("14:37"), NewTimeString(moment))
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:45"), got)

	got, err = TimeString("10:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	// wraps past midnight within the same day clock
	got, err = TimeString("23:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), got)
}

func TestTimeString_Hour(t *testing.T) {
	hour, err := TimeString("14:30").Hour()
	require.NoError(t, err)
	assert.Equal(t, 14, hour)

	_, err = TimeString("bad").Hour()
	assert.Error(t, err)
}

func TestTimeString_MinutesUntil(t *testing.T) {
	minutes, err := TimeString("09:00").MinutesUntil("10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)

	minutes, err = TimeString("10:30").MinutesUntil("09:00")
	require.NoError(t, err)
	assert.Equal(t, -90, minutes)
}
