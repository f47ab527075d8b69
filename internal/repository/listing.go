package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, host_id, title, price_per_night, currency, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		l.ID, l.HostID, l.Title, l.PricePerNight, l.Currency, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT id, host_id, title, price_per_night, currency, created_at, updated_at
			  FROM listings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	var l domain.Listing
	if err = row.Scan(&l.ID, &l.HostID, &l.Title, &l.PricePerNight, &l.Currency, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	if l.AvailableDates, err = r.windows(ctx, l.ID); err != nil {
		return nil, err
	}

	return &l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT id, host_id, title, price_per_night, currency, created_at, updated_at
			  FROM listings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err = rows.Scan(&l.ID, &l.HostID, &l.Title, &l.PricePerNight, &l.Currency, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}

// SetAvailability replaces the declared windows of a listing.
func (r *ListingRepository) SetAvailability(ctx context.Context, listingID string, windows []domain.DateRange) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockListing(ctx, tx, listingID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM listing_availability WHERE listing_id = $1`, listingID); err != nil {
		return fmt.Errorf("clear availability: %w", err)
	}

	insert := `INSERT INTO listing_availability (listing_id, start_date, end_date) VALUES ($1, $2, $3)`
	for _, w := range windows {
		if _, err = tx.ExecContext(ctx, insert, listingID, w.CheckIn, w.CheckOut); err != nil {
			return fmt.Errorf("insert availability: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `UPDATE listings SET updated_at = now() WHERE id = $1`, listingID); err != nil {
		return fmt.Errorf("touch listing: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (r *ListingRepository) windows(ctx context.Context, listingID string) ([]domain.DateRange, error) {
	query := `SELECT start_date, end_date
			  FROM listing_availability
			  WHERE listing_id = $1
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	defer rows.Close()

	res := make([]domain.DateRange, 0)
	for rows.Next() {
		var w domain.DateRange
		if err = rows.Scan(&w.CheckIn, &w.CheckOut); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		w.CheckIn = domain.TruncateDay(w.CheckIn)
		w.CheckOut = domain.TruncateDay(w.CheckOut)
		res = append(res, w)
	}

	return res, rows.Err()
}
