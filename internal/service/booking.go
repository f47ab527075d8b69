package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	ledger       ports.ReservationLedger
	userRepo     ports.UserRepo
	gateway      ports.PaymentGateway
	availability *AvailabilityService
	notifier     ports.BookingNotifier
	pendingTTL   time.Duration
	maxNights    int
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	ledger ports.ReservationLedger,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	availability *AvailabilityService,
	notifier ports.BookingNotifier,
	pendingTTL time.Duration,
	maxNights int,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		ledger:       ledger,
		userRepo:     userRepo,
		gateway:      gateway,
		availability: availability,
		notifier:     notifier,
		pendingTTL:   pendingTTL,
		maxNights:    maxNights,
		logger:       logger,
	}
}

// Create reserves intent for a stay: it stores a pending booking and opens a payment order for it.
// Overlapping pending bookings are allowed; only one of them can be confirmed later.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingOrder, error) {
	if input.UserID == "" || input.ListingID == "" {
		return nil, fmt.Errorf("%w: user_id and listing_id are required", domain.ErrValidation)
	}
	if input.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: total_price must be positive", domain.ErrValidation)
	}

	stay, err := domain.NewDateRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if err = ValidateStay(stay, time.Now()); err != nil {
		return nil, err
	}
	if s.maxNights > 0 && stay.Nights() > s.maxNights {
		return nil, fmt.Errorf("%w: stay of %d nights exceeds the limit of %d", domain.ErrValidation, stay.Nights(), s.maxNights)
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	listing, err := s.availability.Snapshot(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	total, err := listing.TotalPrice(stay)
	if err != nil {
		return nil, err
	}
	if input.TotalPrice != 0 && input.TotalPrice != total {
		return nil, fmt.Errorf("%w: total_price %d does not match %d nights at %d",
			domain.ErrValidation, input.TotalPrice, stay.Nights(), listing.PricePerNight)
	}

	if !s.availability.Fits(listing, stay) {
		return nil, fmt.Errorf("%w: %s", domain.ErrConflict, stay)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ListingID:  listing.ID,
		UserID:     user.ID,
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		TotalPrice: total,
		Currency:   listing.Currency,
		Status:     domain.BookingStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	order, err := s.gateway.CreateOrder(ctx, booking.ID, total, listing.Currency)
	if err != nil {
		s.logger.Error("payment order creation failed",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		if _, failErr := s.bookingRepo.MarkFailed(ctx, booking.ID, domain.PaymentRef{}); failErr != nil {
			return nil, errors.Join(
				fmt.Errorf("%w: %v", domain.ErrPaymentGateway, err),
				fmt.Errorf("mark booking failed: %w", failErr),
			)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentGateway, err)
	}

	if err = s.bookingRepo.SetPaymentOrder(ctx, booking.ID, order.ID); err != nil {
		s.logger.Error("payment order not stored",
			logger.String("booking_id", booking.ID),
			logger.String("order_id", order.ID),
			logger.String("error", err.Error()),
		)
		if _, failErr := s.bookingRepo.MarkFailed(ctx, booking.ID, domain.PaymentRef{}); failErr != nil {
			return nil, errors.Join(
				fmt.Errorf("store payment order: %w", err),
				fmt.Errorf("mark booking failed: %w", failErr),
			)
		}
		return nil, fmt.Errorf("store payment order: %w", err)
	}
	booking.PaymentOrderID = order.ID

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", booking.ListingID),
		logger.String("user_id", booking.UserID),
		logger.String("stay", stay.String()),
		logger.String("order_id", order.ID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, listing, booking)

	return &domain.BookingOrder{Booking: booking, Order: order}, nil
}

// VerifyPayment checks the callback with the gateway and confirms the booking. A stay that was taken
// since the order was created leaves the booking failed and returns domain.ErrConflict.
func (s *BookingService) VerifyPayment(ctx context.Context, in domain.PaymentVerification) (*domain.Booking, error) {
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return nil, fmt.Errorf("%w: order_id, payment_id and signature are required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByPaymentOrder(ctx, in.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	switch booking.Status {
	case domain.BookingStatusPending:
	case domain.BookingStatusConfirmed:
		if booking.PaymentID != in.PaymentID {
			return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, booking.Status)
		}
		ok, err := s.gateway.VerifyPayment(ctx, in, booking.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPaymentGateway, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, booking.Status)
		}
		return booking, nil
	default:
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, booking.Status)
	}

	ref := domain.PaymentRef{PaymentID: in.PaymentID, Signature: in.Signature}

	ok, err := s.gateway.VerifyPayment(ctx, in, booking.TotalPrice)
	if err != nil {
		s.logger.Error("payment verification unavailable",
			logger.String("booking_id", booking.ID),
			logger.String("order_id", in.OrderID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentGateway, err)
	}
	if !ok {
		s.logger.Warn("payment not verified",
			logger.String("booking_id", booking.ID),
			logger.String("order_id", in.OrderID),
		)
		failed, err := s.bookingRepo.MarkFailed(ctx, booking.ID, ref)
		if err != nil {
			return nil, errors.Join(domain.ErrPaymentVerification, fmt.Errorf("mark booking failed: %w", err))
		}
		s.notify(ctx, failed, s.notifier.NotifyBookingFailed)
		return nil, domain.ErrPaymentVerification
	}

	confirmed, err := s.ledger.Confirm(ctx, booking.ID, ref)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, s.failOnConflict(ctx, booking, confirmed, ref, err)
		}
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	s.availability.Invalidate(ctx, confirmed.ListingID)

	s.logger.Info("booking confirmed",
		logger.String("booking_id", confirmed.ID),
		logger.String("listing_id", confirmed.ListingID),
		logger.String("payment_id", in.PaymentID),
	)
	s.notify(ctx, confirmed, s.notifier.NotifyBookingConfirmed)

	return confirmed, nil
}

// failOnConflict makes sure a booking that lost the ledger race ends up failed.
func (s *BookingService) failOnConflict(
	ctx context.Context,
	booking, returned *domain.Booking,
	ref domain.PaymentRef,
	conflictErr error,
) error {
	failed := returned
	if failed == nil || failed.Status != domain.BookingStatusFailed {
		var err error
		failed, err = s.bookingRepo.MarkFailed(ctx, booking.ID, ref)
		if err != nil && !errors.Is(err, domain.ErrInvalidState) {
			return errors.Join(conflictErr, fmt.Errorf("mark booking failed: %w", err))
		}
	}

	s.logger.Warn("booking lost reservation race",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", booking.ListingID),
		logger.String("stay", booking.Range().String()),
	)
	if failed != nil {
		s.notify(ctx, failed, s.notifier.NotifyBookingFailed)
	}

	return fmt.Errorf("confirm booking: %w", conflictErr)
}

// Cancel cancels a pending or confirmed booking. Cancelling a failed or already cancelled
// booking returns domain.ErrInvalidState and leaves the ledger untouched.
func (s *BookingService) Cancel(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.authorize(ctx, booking, actor); err != nil {
		return nil, err
	}

	if !booking.Status.CanTransition(domain.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, booking.Status)
	}

	cancelled, err := s.ledger.Cancel(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	s.availability.Invalidate(ctx, cancelled.ListingID)

	s.logger.Info("booking cancelled",
		logger.String("booking_id", cancelled.ID),
		logger.String("listing_id", cancelled.ListingID),
		logger.String("actor_id", actor.UserID),
		logger.String("previous_status", string(booking.Status)),
	)
	s.notify(ctx, cancelled, s.notifier.NotifyBookingCancelled)

	return cancelled, nil
}

// UpdateStatus is the administrative override. It follows the same transition rules as the
// regular lifecycle, so a manual confirmation still goes through the ledger.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !booking.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidState, booking.Status, status)
	}

	ref := domain.PaymentRef{PaymentID: booking.PaymentID, Signature: booking.PaymentSignature}

	var updated *domain.Booking
	switch status {
	case domain.BookingStatusConfirmed:
		updated, err = s.ledger.Confirm(ctx, bookingID, ref)
	case domain.BookingStatusFailed:
		updated, err = s.bookingRepo.MarkFailed(ctx, bookingID, ref)
	case domain.BookingStatusCancelled:
		updated, err = s.ledger.Cancel(ctx, bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if status != domain.BookingStatusFailed {
		s.availability.Invalidate(ctx, updated.ListingID)
	}

	s.logger.Info("booking status overridden",
		logger.String("booking_id", bookingID),
		logger.String("from", string(booking.Status)),
		logger.String("to", string(status)),
	)

	switch status {
	case domain.BookingStatusConfirmed:
		s.notify(ctx, updated, s.notifier.NotifyBookingConfirmed)
	case domain.BookingStatusFailed:
		s.notify(ctx, updated, s.notifier.NotifyBookingFailed)
	case domain.BookingStatusCancelled:
		s.notify(ctx, updated, s.notifier.NotifyBookingCancelled)
	}

	return updated, nil
}

// ExpirePending fails every pending booking older than the pending TTL.
func (s *BookingService) ExpirePending(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.bookingRepo.ExpirePending(ctx, time.Now().UTC().Add(-s.pendingTTL))
	if err != nil {
		return nil, fmt.Errorf("expire pending: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("pending bookings expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListByListing(ctx context.Context, listingID string) ([]*domain.Booking, error) {
	if _, err := s.availability.Listing(ctx, listingID); err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return s.bookingRepo.ListByListing(ctx, listingID)
}

func (s *BookingService) authorize(ctx context.Context, b *domain.Booking, actor domain.Actor) error {
	if actor.IsAdmin() || (actor.UserID != "" && actor.UserID == b.UserID) {
		return nil
	}

	listing, err := s.availability.Listing(ctx, b.ListingID)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}
	if actor.UserID == "" || listing.HostID != actor.UserID {
		return domain.ErrForbidden
	}

	return nil
}

type notifyFunc func(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)

// notify resolves the guest and listing and sends the message in the background.
// Lookup failures are logged, never returned.
func (s *BookingService) notify(ctx context.Context, b *domain.Booking, send notifyFunc) {
	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	listing, err := s.availability.Listing(ctx, b.ListingID)
	if err != nil {
		s.logger.Error("failed to get listing for notification",
			logger.String("listing_id", b.ListingID),
			logger.String("error", err.Error()),
		)
		return
	}

	go send(context.WithoutCancel(ctx), user, listing, b)
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for expiry notification",
				logger.String("user_id", b.UserID),
			)
			continue
		}

		listing, err := s.availability.Listing(ctx, b.ListingID)
		if err != nil {
			s.logger.Error("failed to get listing for expiry notification",
				logger.String("listing_id", b.ListingID),
			)
			continue
		}

		s.notifier.NotifyBookingFailed(ctx, user, listing, b)
	}
}
