package domain

import (
	"fmt"
	"math"
	"time"
)

type Listing struct {
	ID             string      `json:"id"`
	HostID         string      `json:"host_id"`
	Title          string      `json:"title"`
	PricePerNight  int64       `json:"price_per_night"`
	Currency       string      `json:"currency"`
	AvailableDates []DateRange `json:"available_dates"`
	BookedSlots    []DateRange `json:"booked_slots"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type CreateListingInput struct {
	HostID        string
	Title         string
	PricePerNight int64
	Currency      string
}

// IsRangeFree reports whether r can be booked on the listing: no booked slot overlaps it and,
// when enforceWindows is set and the host declared windows, one of them fully contains it.
func (l *Listing) IsRangeFree(r DateRange, enforceWindows bool) bool {
	for _, slot := range l.BookedSlots {
		if slot.Overlaps(r) {
			return false
		}
	}

	if !enforceWindows || len(l.AvailableDates) == 0 {
		return true
	}

	for _, w := range l.AvailableDates {
		if w.Contains(r) {
			return true
		}
	}
	return false
}

// TotalPrice is the server-side price of a stay in minor units.
// A product that does not fit into int64 is a validation error.
func (l *Listing) TotalPrice(r DateRange) (int64, error) {
	nights := int64(r.Nights())
	if nights <= 0 || l.PricePerNight <= 0 {
		return 0, fmt.Errorf("%w: stay must have at least one night and a positive price", ErrValidation)
	}
	if l.PricePerNight > math.MaxInt64/nights {
		return 0, fmt.Errorf("%w: total price of %d nights at %d overflows", ErrValidation, nights, l.PricePerNight)
	}
	return l.PricePerNight * nights, nil
}
