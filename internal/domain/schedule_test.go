package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, 2))
	assert.Equal(t, 28, DaysIn(2023, 2))
	assert.Equal(t, 28, DaysIn(1900, 2))
	assert.Equal(t, 29, DaysIn(2000, 2))
	assert.Equal(t, 31, DaysIn(2026, 12))
	assert.Equal(t, 30, DaysIn(2026, 4))
}

func TestParseTimeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
		ok   bool
	}{
		{"10:00", TimeOfDay{10, 0}, true},
		{"9:30", TimeOfDay{9, 30}, true},
		{" 14.15 ", TimeOfDay{14, 15}, true},
		{"08-45", TimeOfDay{8, 45}, true},
		{"17", TimeOfDay{17, 0}, true},
		{"24:00", TimeOfDay{}, false},
		{"10:5", TimeOfDay{}, false},
		{"morning", TimeOfDay{}, false},
		{"", TimeOfDay{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseTimeLabel(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestNormalizeTimeLabels(t *testing.T) {
	got := NormalizeTimeLabels([]string{"14:00", "after lunch", "9:00", " ", "10.30", "evening"})
	assert.Equal(t, []string{"09:00", "10:30", "14:00", "after lunch", "evening"}, got)
}

func TestNormalizeTimeLabels_KeepsRepeats(t *testing.T) {
	got := NormalizeTimeLabels([]string{"10:00", "10:00"})
	assert.Equal(t, []string{"10:00", "10:00"}, got)
}

func TestParseDayOffPolicy(t *testing.T) {
	p, err := ParseDayOffPolicy("overwrite")
	require.NoError(t, err)
	assert.Equal(t, DayOffOverwrite, p)

	_, err = ParseDayOffPolicy("cancel")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDuplicateSlotError(t *testing.T) {
	var err error = &DuplicateSlotError{MasterID: 3, Date: "2026-03-01", Time: "10:00"}
	assert.True(t, errors.Is(err, ErrDuplicateSlot))
	assert.Contains(t, err.Error(), "2026-03-01 10:00")
}

func TestStoreFailure(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := StoreFailure("create client", cause)
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, cause)
}
