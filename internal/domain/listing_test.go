package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_IsRangeFree_MarchScenario(t *testing.T) {
	l := &Listing{BookedSlots: []DateRange{rng(time.March, 1, 5)}}

	assert.False(t, l.IsRangeFree(rng(time.March, 3, 6), true))
	assert.True(t, l.IsRangeFree(rng(time.March, 5, 8), true))
}

func TestListing_IsRangeFree_SharedEndpoint(t *testing.T) {
	l := &Listing{BookedSlots: []DateRange{rng(time.January, 10, 12)}}

	assert.True(t, l.IsRangeFree(rng(time.January, 12, 14), false))
}

func TestListing_IsRangeFree_Windows(t *testing.T) {
	l := &Listing{AvailableDates: []DateRange{rng(time.July, 1, 10), rng(time.July, 20, 31)}}

	assert.True(t, l.IsRangeFree(rng(time.July, 2, 5), true))
	assert.True(t, l.IsRangeFree(rng(time.July, 20, 31), true))
	assert.False(t, l.IsRangeFree(rng(time.July, 8, 12), true), "straddles a window edge")
	assert.False(t, l.IsRangeFree(rng(time.July, 12, 15), true), "between windows")
	assert.True(t, l.IsRangeFree(rng(time.July, 12, 15), false), "windows not enforced")
}

func TestListing_IsRangeFree_NoWindowsIsOpen(t *testing.T) {
	l := &Listing{}

	assert.True(t, l.IsRangeFree(rng(time.August, 1, 4), true))
}

func TestListing_TotalPrice(t *testing.T) {
	l := &Listing{PricePerNight: 12500}

	total, err := l.TotalPrice(rng(time.September, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(37500), total)
}

func TestListing_TotalPrice_Overflow(t *testing.T) {
	in := day(time.January, 1)
	l := &Listing{PricePerNight: 1_000_000_000_000_000}

	_, err := l.TotalPrice(DateRange{CheckIn: in, CheckOut: in.AddDate(0, 0, 10000)})
	assert.ErrorIs(t, err, ErrValidation)

	l.PricePerNight = math.MaxInt64
	total, err := l.TotalPrice(DateRange{CheckIn: in, CheckOut: in.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), total)

	_, err = l.TotalPrice(DateRange{CheckIn: in, CheckOut: in.AddDate(0, 0, 2)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListing_TotalPrice_NoNights(t *testing.T) {
	l := &Listing{PricePerNight: 100}

	_, err := l.TotalPrice(DateRange{CheckIn: day(time.May, 3), CheckOut: day(time.May, 3)})
	assert.ErrorIs(t, err, ErrValidation)
}
