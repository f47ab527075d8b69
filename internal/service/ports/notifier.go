package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingFailed(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
}
