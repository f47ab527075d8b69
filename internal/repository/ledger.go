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

// LedgerRepository stores confirmed stays in booked_slots. Every mutation locks the
// listing row first, so two confirmations for the same listing never interleave.
// The exclusion constraint on booked_slots backs the same invariant at the schema level.
type LedgerRepository struct {
	db       *dbpg.DB
	txs      txBeginner
	strategy retry.Strategy
}

// txBeginner is the primary connection pool. Ledger transactions never go to replicas.
type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db:       db,
		txs:      db.Master,
		strategy: defaultStrategy(),
	}
}

func (r *LedgerRepository) Confirm(ctx context.Context, bookingID string, ref domain.PaymentRef) (*domain.Booking, error) {
	tx, err := r.txs.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, b.Status)
	}

	if err = lockListing(ctx, tx, b.ListingID); err != nil {
		return nil, err
	}

	var taken bool
	overlapQuery := `SELECT EXISTS (
				SELECT 1 FROM booked_slots
				WHERE listing_id = $1 AND check_in < $3 AND check_out > $2
			  )`
	if err = tx.QueryRowContext(ctx, overlapQuery, b.ListingID, b.CheckIn, b.CheckOut).Scan(&taken); err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}

	if taken {
		failed, err := setStatus(ctx, tx, bookingID, domain.BookingStatusFailed, ref)
		if err != nil {
			return nil, err
		}
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return failed, domain.ErrConflict
	}

	slotQuery := `INSERT INTO booked_slots (booking_id, listing_id, check_in, check_out)
				  VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, slotQuery, b.ID, b.ListingID, b.CheckIn, b.CheckOut); err != nil {
		if pgCode(err) == codeExclusionViolation {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("insert slot: %w", err)
	}

	confirmed, err := setStatus(ctx, tx, bookingID, domain.BookingStatusConfirmed, ref)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return confirmed, nil
}

func (r *LedgerRepository) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	tx, err := r.txs.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransition(domain.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, b.Status)
	}

	if b.Status == domain.BookingStatusConfirmed {
		if err = lockListing(ctx, tx, b.ListingID); err != nil {
			return nil, err
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM booked_slots WHERE booking_id = $1`, b.ID); err != nil {
			return nil, fmt.Errorf("release slot: %w", err)
		}
	}

	cancelled, err := setStatus(ctx, tx, bookingID, domain.BookingStatusCancelled, domain.PaymentRef{})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return cancelled, nil
}

func (r *LedgerRepository) BookedSlots(ctx context.Context, listingID string) ([]domain.DateRange, error) {
	query := `SELECT check_in, check_out
			  FROM booked_slots
			  WHERE listing_id = $1
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list booked slots: %w", err)
	}
	defer rows.Close()

	res := make([]domain.DateRange, 0)
	for rows.Next() {
		var s domain.DateRange
		if err = rows.Scan(&s.CheckIn, &s.CheckOut); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		s.CheckIn = domain.TruncateDay(s.CheckIn)
		s.CheckOut = domain.TruncateDay(s.CheckOut)
		res = append(res, s)
	}

	return res, rows.Err()
}

func lockBooking(ctx context.Context, tx *sql.Tx, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1
			  FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	return b, nil
}

func lockListing(ctx context.Context, tx *sql.Tx, listingID string) error {
	var id string
	if err := tx.QueryRowContext(ctx, `SELECT id FROM listings WHERE id = $1 FOR UPDATE`, listingID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("lock listing: %w", err)
	}
	return nil
}

func setStatus(
	ctx context.Context,
	tx *sql.Tx,
	bookingID string,
	status domain.BookingStatus,
	ref domain.PaymentRef,
) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2,
			      payment_id = COALESCE(NULLIF($3, ''), payment_id),
			      payment_signature = COALESCE(NULLIF($4, ''), payment_signature),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(ctx, query, bookingID, status, ref.PaymentID, ref.Signature))
	if err != nil {
		return nil, fmt.Errorf("set booking %s: %w", status, err)
	}
	return b, nil
}
