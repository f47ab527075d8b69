package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2030, month, d, 0, 0, 0, 0, time.UTC)
}

func rng(month time.Month, from, to int) DateRange {
	return DateRange{CheckIn: day(month, from), CheckOut: day(month, to)}
}

func TestDateRange_Overlaps_MatchesIntervalRule(t *testing.T) {
	// every pair of ranges inside a 6-day window
	for a := 1; a <= 6; a++ {
		for b := a + 1; b <= 7; b++ {
			for c := 1; c <= 6; c++ {
				for d := c + 1; d <= 7; d++ {
					r1 := rng(time.January, a, b)
					r2 := rng(time.January, c, d)
					want := a < d && b > c
					assert.Equal(t, want, r1.Overlaps(r2), "%s vs %s", r1, r2)
					assert.Equal(t, want, r2.Overlaps(r1), "%s vs %s (symmetric)", r2, r1)
				}
			}
		}
	}
}

func TestDateRange_Overlaps_TouchingEndpoints(t *testing.T) {
	booked := rng(time.January, 10, 12)

	assert.False(t, booked.Overlaps(rng(time.January, 12, 14)))
	assert.False(t, booked.Overlaps(rng(time.January, 8, 10)))
	assert.True(t, booked.Overlaps(rng(time.January, 11, 14)))
}

func TestDateRange_Contains(t *testing.T) {
	window := rng(time.March, 1, 31)

	assert.True(t, window.Contains(rng(time.March, 1, 31)))
	assert.True(t, window.Contains(rng(time.March, 5, 8)))
	assert.False(t, window.Contains(DateRange{CheckIn: day(time.February, 27), CheckOut: day(time.March, 2)}))
	assert.False(t, window.Contains(DateRange{CheckIn: day(time.March, 30), CheckOut: day(time.April, 2)}))
}

func TestNewDateRange_Validation(t *testing.T) {
	_, err := NewDateRange(day(time.May, 3), day(time.May, 3))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDateRange(day(time.May, 4), day(time.May, 3))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDateRange(time.Time{}, day(time.May, 3))
	assert.ErrorIs(t, err, ErrValidation)

	r, err := NewDateRange(day(time.May, 1).Add(15*time.Hour), day(time.May, 3).Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, day(time.May, 1), r.CheckIn)
	assert.Equal(t, 2, r.Nights())
}

func TestDateRange_Nights_LongStays(t *testing.T) {
	in := day(time.January, 1)

	r := DateRange{CheckIn: in, CheckOut: in.AddDate(400, 0, 0)}
	assert.Equal(t, 146097, r.Nights())

	r = DateRange{CheckIn: in, CheckOut: in.AddDate(1, 0, 0)}
	assert.Equal(t, 365, r.Nights())
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2030-06-01", "2030-06-03")
	require.NoError(t, err)
	assert.Equal(t, rng(time.June, 1, 3), r)

	_, err = ParseDateRange("06/01/2030", "2030-06-03")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookingStatus_CanTransition(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransition(BookingStatusConfirmed))
	assert.True(t, BookingStatusPending.CanTransition(BookingStatusFailed))
	assert.True(t, BookingStatusPending.CanTransition(BookingStatusCancelled))
	assert.True(t, BookingStatusConfirmed.CanTransition(BookingStatusCancelled))

	assert.False(t, BookingStatusConfirmed.CanTransition(BookingStatusFailed))
	assert.False(t, BookingStatusConfirmed.CanTransition(BookingStatusPending))
	assert.False(t, BookingStatusFailed.CanTransition(BookingStatusCancelled))
	assert.False(t, BookingStatusCancelled.CanTransition(BookingStatusCancelled))
}
