package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type WishlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWishlistRepo(db *dbpg.DB) *WishlistRepository {
	return &WishlistRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *WishlistRepository) Add(ctx context.Context, item *domain.WishlistItem) error {
	query := `INSERT INTO wishlist_items (user_id, listing_id, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_id, listing_id) DO NOTHING`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, item.UserID, item.ListingID, item.CreatedAt)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return missingReference(err)
		}
		return fmt.Errorf("insert wishlist item: %w", err)
	}

	return nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, listingID string) error {
	query := `DELETE FROM wishlist_items WHERE user_id = $1 AND listing_id = $2`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, listingID); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}

func (r *WishlistRepository) Clear(ctx context.Context, userID string) error {
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM wishlist_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}
	return nil
}

func (r *WishlistRepository) List(ctx context.Context, userID string) ([]*domain.WishlistItem, error) {
	query := `SELECT user_id, listing_id, created_at
			  FROM wishlist_items
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.WishlistItem, 0)
	for rows.Next() {
		var it domain.WishlistItem
		if err = rows.Scan(&it.UserID, &it.ListingID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		res = append(res, &it)
	}

	return res, rows.Err()
}

func missingReference(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && strings.Contains(pqErr.Constraint, "listing") {
		return domain.ErrListingNotFound
	}
	return domain.ErrUserNotFound
}
