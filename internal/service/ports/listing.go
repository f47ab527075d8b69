package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	// GetByID returns the listing with its availability windows; booked slots come from the ledger.
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	SetAvailability(ctx context.Context, listingID string, windows []domain.DateRange) error
}

// SlotCache keeps advisory snapshots of booked slots.
type SlotCache interface {
	Get(ctx context.Context, listingID string) ([]domain.DateRange, bool, error)
	// Generation is read before loading slots from the ledger and passed back to Set,
	// which drops the write if the listing was invalidated in between.
	Generation(ctx context.Context, listingID string) (int64, error)
	Set(ctx context.Context, listingID string, gen int64, slots []domain.DateRange) error
	Invalidate(ctx context.Context, listingID string) error
}
