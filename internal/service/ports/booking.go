package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByPaymentOrder(ctx context.Context, orderID string) (*domain.Booking, error)
	SetPaymentOrder(ctx context.Context, bookingID, orderID string) error
	// MarkFailed moves a pending booking to failed. Returns domain.ErrInvalidState if it is no longer pending.
	MarkFailed(ctx context.Context, bookingID string, ref domain.PaymentRef) (*domain.Booking, error)
	ExpirePending(ctx context.Context, createdBefore time.Time) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Booking, error)
}

// ReservationLedger owns the booked slots of every listing. Mutations are serialized per listing.
type ReservationLedger interface {
	// Confirm appends the booking range to the listing slots and marks the booking confirmed
	// in one transaction. On overlap the booking is marked failed and domain.ErrConflict is returned
	// together with the failed booking.
	Confirm(ctx context.Context, bookingID string, ref domain.PaymentRef) (*domain.Booking, error)
	// Cancel marks a pending or confirmed booking cancelled, releasing its slot if it held one.
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
	BookedSlots(ctx context.Context, listingID string) ([]domain.DateRange, error)
}
