package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is a half-open stay [CheckIn, CheckOut). Both ends are calendar dates at UTC midnight.
type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{CheckIn: TruncateDay(checkIn), CheckOut: TruncateDay(checkOut)}
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return DateRange{}, fmt.Errorf("%w: check_in and check_out are required", ErrValidation)
	}
	if !r.CheckIn.Before(r.CheckOut) {
		return DateRange{}, fmt.Errorf("%w: check_in must be before check_out", ErrValidation)
	}
	return r, nil
}

// ParseDateRange parses two YYYY-MM-DD dates.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid check_in, expected %s", ErrValidation, DateLayout)
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid check_out, expected %s", ErrValidation, DateLayout)
	}
	return NewDateRange(in, out)
}

func TruncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two half-open ranges share at least one night.
// Touching endpoints do not overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.CheckIn.Before(o.CheckOut) && r.CheckOut.After(o.CheckIn)
}

// Contains reports whether o lies fully inside r.
func (r DateRange) Contains(o DateRange) bool {
	return !o.CheckIn.Before(r.CheckIn) && !o.CheckOut.After(r.CheckOut)
}

const secondsPerDay = 24 * 60 * 60

// Nights counts calendar days between the endpoints. It works on Unix seconds
// so ranges longer than a time.Duration can hold are still counted exactly.
func (r DateRange) Nights() int {
	return int((r.CheckOut.Unix() - r.CheckIn.Unix()) / secondsPerDay)
}

func (r DateRange) Equal(o DateRange) bool {
	return r.CheckIn.Equal(o.CheckIn) && r.CheckOut.Equal(o.CheckOut)
}

func (r DateRange) String() string {
	return r.CheckIn.Format(DateLayout) + ".." + r.CheckOut.Format(DateLayout)
}
