package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    Minutes
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{" 10:15 ", 615, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"0930", 0, true},
		{"", 0, true},
		{"nine:thirty", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestNewRejectsEmptyOrInverted(t *testing.T) {
	_, err := New("10:00", "10:00")
	assert.ErrorIs(t, err, ErrEmptyInterval)

	_, err = New("11:00", "10:00")
	assert.ErrorIs(t, err, ErrEmptyInterval)

	_, err = New("10:00", "bad")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := New(start, end)
	require.NoError(t, err)
	return iv
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", mustInterval(t, "09:00", "10:00"), mustInterval(t, "09:00", "10:00"), true},
		{"back to back", mustInterval(t, "09:00", "10:00"), mustInterval(t, "10:00", "11:00"), false},
		{"partial overlap", mustInterval(t, "09:00", "11:00"), mustInterval(t, "10:30", "12:00"), true},
		{"contained", mustInterval(t, "09:00", "12:00"), mustInterval(t, "10:00", "11:00"), true},
		{"disjoint", mustInterval(t, "08:00", "09:00"), mustInterval(t, "13:00", "14:00"), false},
		{"one minute shared", mustInterval(t, "09:00", "10:01"), mustInterval(t, "10:00", "11:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	iv := mustInterval(t, "09:30", "10:30")
	assert.True(t, iv.Overlaps(iv))
}

func TestMinutesString(t *testing.T) {
	assert.Equal(t, "09:05", Minutes(545).String())
	assert.Equal(t, "[09:00, 11:00)", mustInterval(t, "09:00", "11:00").String())
}
