package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type WishlistRepo interface {
	Add(ctx context.Context, item *domain.WishlistItem) error
	Remove(ctx context.Context, userID, listingID string) error
	Clear(ctx context.Context, userID string) error
	List(ctx context.Context, userID string) ([]*domain.WishlistItem, error)
}
