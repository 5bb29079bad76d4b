package queue

import (
	"testing"
	"time"

	"github.com/ringstack/ringstack/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindowValidation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		first    string
		last     string
		wantErr  string
	}{
		{
			name:     "valid window",
			timezone: "America/New_York",
			first:    "09:00",
			last:     "17:00",
		},
		{
			name:     "single-minute window",
			timezone: "UTC",
			first:    "12:00",
			last:     "12:00",
		},
		{
			name:     "unknown timezone",
			timezone: "Mars/Olympus_Mons",
			first:    "09:00",
			last:     "17:00",
			wantErr:  "timezone",
		},
		{
			name:     "malformed first call time",
			timezone: "UTC",
			first:    "9am",
			last:     "17:00",
			wantErr:  "first_call_time",
		},
		{
			name:     "malformed last call time",
			timezone: "UTC",
			first:    "09:00",
			last:     "25:99",
			wantErr:  "last_call_time",
		},
		{
			name:     "midnight-crossing window rejected",
			timezone: "UTC",
			first:    "22:00",
			last:     "02:00",
			wantErr:  "must not cross midnight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWindow(tt.timezone, tt.first, tt.last)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				var validErr *services.ValidationError
				assert.ErrorAs(t, err, &validErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, w)
		})
	}
}

func TestWindowContainsBoundaries(t *testing.T) {
	// 09:00-17:00 in Asia/Kolkata (UTC+5:30): both boundaries inclusive,
	// second-granular on either side.
	w, err := NewWindow("Asia/Kolkata", "09:00", "17:00")
	require.NoError(t, err)

	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"one second before opening", time.Date(2025, 6, 2, 8, 59, 59, 0, kolkata), false},
		{"exactly at opening", time.Date(2025, 6, 2, 9, 0, 0, 0, kolkata), true},
		{"midday", time.Date(2025, 6, 2, 12, 30, 0, 0, kolkata), true},
		{"exactly at closing", time.Date(2025, 6, 2, 17, 0, 0, 0, kolkata), true},
		{"one second after closing", time.Date(2025, 6, 2, 17, 0, 1, 0, kolkata), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.at))
		})
	}
}

func TestWindowContainsConvertsTimezone(t *testing.T) {
	// The window is evaluated in its own zone regardless of the zone the
	// input time carries. 05:00 UTC is 10:30 in Kolkata: inside. 13:00 UTC is
	// 18:30: outside.
	w, err := NewWindow("Asia/Kolkata", "09:00", "17:00")
	require.NoError(t, err)

	assert.True(t, w.Contains(time.Date(2025, 6, 2, 5, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)))
}

func TestWindowNextOpen(t *testing.T) {
	w, err := NewWindow("UTC", "09:00", "17:00")
	require.NoError(t, err)

	t.Run("inside window returns now", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, now, w.NextOpen(now))
	})

	t.Run("before opening returns today's opening", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)
		want := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		assert.True(t, w.NextOpen(now).Equal(want))
	})

	t.Run("after closing returns tomorrow's opening", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)
		want := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
		assert.True(t, w.NextOpen(now).Equal(want))
	})
}
