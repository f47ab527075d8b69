package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, listing_id, user_id, check_in, check_out, total_price, currency, status,
			  COALESCE(payment_order_id, ''), payment_id, payment_signature, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.ListingID, &b.UserID, &b.CheckIn, &b.CheckOut,
		&b.TotalPrice, &b.Currency, &b.Status,
		&b.PaymentOrderID, &b.PaymentID, &b.PaymentSignature,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.CheckIn = domain.TruncateDay(b.CheckIn)
	b.CheckOut = domain.TruncateDay(b.CheckOut)
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, listing_id, user_id, check_in, check_out, total_price, currency,
			  		status, payment_id, payment_signature, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '', '', $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.ListingID, b.UserID, b.CheckIn, b.CheckOut,
		b.TotalPrice, b.Currency, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%w or %w", domain.ErrListingNotFound, domain.ErrUserNotFound)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *BookingRepository) GetByPaymentOrder(ctx context.Context, orderID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE payment_order_id = $1`
	return r.getOne(ctx, query, orderID)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, arg any) (*domain.Booking, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) SetPaymentOrder(ctx context.Context, bookingID, orderID string) error {
	query := `UPDATE bookings
			  SET payment_order_id = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, orderID)
	if err != nil {
		return fmt.Errorf("set payment order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) MarkFailed(ctx context.Context, bookingID string, ref domain.PaymentRef) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2,
			      payment_id = COALESCE(NULLIF($4, ''), payment_id),
			      payment_signature = COALESCE(NULLIF($5, ''), payment_signature),
			      updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, bookingID,
		domain.BookingStatusFailed, domain.BookingStatusPending,
		ref.PaymentID, ref.Signature,
	)
	if err != nil {
		return nil, fmt.Errorf("mark booking failed: %w", err)
	}

	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	// nothing updated: either the booking is gone or it already left pending
	if _, err = r.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: booking is not pending", domain.ErrInvalidState)
}

func (r *BookingRepository) ExpirePending(ctx context.Context, createdBefore time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND created_at < $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusFailed, createdBefore,
	)
	if err != nil {
		return nil, fmt.Errorf("expire pending: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE listing_id = $1
              ORDER BY check_in, created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by listing: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}
