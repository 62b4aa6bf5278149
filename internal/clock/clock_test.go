package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStart(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midday",
			in:   time.Date(2026, 8, 30, 14, 22, 7, 500, loc),
			want: time.Date(2026, 8, 30, 0, 0, 0, 0, loc),
		},
		{
			name: "exact midnight",
			in:   time.Date(2026, 8, 30, 0, 0, 0, 0, loc),
			want: time.Date(2026, 8, 30, 0, 0, 0, 0, loc),
		},
		{
			name: "just before midnight",
			in:   time.Date(2026, 8, 30, 23, 59, 59, 0, loc),
			want: time.Date(2026, 8, 30, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, DayStart(tt.in, loc).Equal(tt.want))
		})
	}
}

func TestDayStartConvertsLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 23:30 UTC on the 29th is already the 30th in Berlin (UTC+2 in summer).
	in := time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC)
	got := DayStart(in, berlin)
	assert.True(t, got.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, berlin)))
}

func TestSameLocalDay(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day",
			a:    time.Date(2026, 8, 30, 0, 0, 1, 0, berlin),
			b:    time.Date(2026, 8, 30, 23, 59, 59, 0, berlin),
			want: true,
		},
		{
			name: "across midnight",
			a:    time.Date(2026, 8, 30, 23, 59, 59, 0, berlin),
			b:    time.Date(2026, 8, 31, 0, 0, 0, 0, berlin),
			want: false,
		},
		{
			name: "same UTC day but different local day",
			a:    time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameLocalDay(tt.a, tt.b, berlin))
		})
	}
}

func TestMonthStart(t *testing.T) {
	got := MonthStart(time.Date(2026, 8, 30, 18, 4, 0, 0, time.UTC), time.UTC)
	assert.True(t, got.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
}
