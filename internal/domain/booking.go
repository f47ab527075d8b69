package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusFailed    BookingStatus = "failed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusFailed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusFailed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled
	default:
		return false
	}
}

type Booking struct {
	ID               string        `json:"id"`
	ListingID        string        `json:"listing_id"`
	UserID           string        `json:"user_id"`
	CheckIn          time.Time     `json:"check_in"`
	CheckOut         time.Time     `json:"check_out"`
	TotalPrice       int64         `json:"total_price"`
	Currency         string        `json:"currency"`
	Status           BookingStatus `json:"status"`
	PaymentOrderID   string        `json:"payment_order_id"`
	PaymentID        string        `json:"payment_id"`
	PaymentSignature string        `json:"payment_signature"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

type CreateBookingInput struct {
	UserID    string
	ListingID string
	CheckIn   time.Time
	CheckOut  time.Time
	// TotalPrice is what the client expects to pay; zero means "not supplied".
	TotalPrice int64
}

type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	// ClientSecret is handed to the payment widget when the gateway issues one.
	ClientSecret string `json:"client_secret,omitempty"`
}

type BookingOrder struct {
	Booking *Booking      `json:"booking"`
	Order   *PaymentOrder `json:"payment_order"`
}

type PaymentVerification struct {
	OrderID   string
	PaymentID string
	Signature string
}

// PaymentRef is what gets stored on a booking once the gateway reports back.
type PaymentRef struct {
	PaymentID string
	Signature string
}
