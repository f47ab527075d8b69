package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AvailabilityService answers whether a stay fits a listing. Its answers are advisory:
// exclusivity is only enforced by the reservation ledger at confirmation time.
type AvailabilityService struct {
	listingRepo    ports.ListingRepo
	ledger         ports.ReservationLedger
	cache          ports.SlotCache
	enforceWindows bool
	logger         logger.Logger
}

func NewAvailabilityService(
	listingRepo ports.ListingRepo,
	ledger ports.ReservationLedger,
	cache ports.SlotCache,
	enforceWindows bool,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		listingRepo:    listingRepo,
		ledger:         ledger,
		cache:          cache,
		enforceWindows: enforceWindows,
		logger:         logger,
	}
}

func (s *AvailabilityService) Listing(ctx context.Context, listingID string) (*domain.Listing, error) {
	return s.listingRepo.GetByID(ctx, listingID)
}

// Snapshot loads the listing together with its current booked slots.
func (s *AvailabilityService) Snapshot(ctx context.Context, listingID string) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	slots, err := s.bookedSlots(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("booked slots: %w", err)
	}
	listing.BookedSlots = slots

	return listing, nil
}

func (s *AvailabilityService) IsRangeFree(ctx context.Context, listingID string, r domain.DateRange) (bool, error) {
	if err := ValidateStay(r, time.Now()); err != nil {
		return false, err
	}

	listing, err := s.Snapshot(ctx, listingID)
	if err != nil {
		return false, err
	}

	return s.Fits(listing, r), nil
}

func (s *AvailabilityService) Fits(listing *domain.Listing, r domain.DateRange) bool {
	return listing.IsRangeFree(r, s.enforceWindows)
}

// Invalidate drops the cached slots of a listing after a ledger mutation.
func (s *AvailabilityService) Invalidate(ctx context.Context, listingID string) {
	if err := s.cache.Invalidate(ctx, listingID); err != nil {
		s.logger.Warn("failed to invalidate slot cache",
			logger.String("listing_id", listingID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *AvailabilityService) bookedSlots(ctx context.Context, listingID string) ([]domain.DateRange, error) {
	slots, ok, err := s.cache.Get(ctx, listingID)
	if err != nil {
		s.logger.Warn("slot cache read failed, falling back to ledger",
			logger.String("listing_id", listingID),
			logger.String("error", err.Error()),
		)
	}
	if ok {
		return slots, nil
	}

	gen, genErr := s.cache.Generation(ctx, listingID)

	slots, err = s.ledger.BookedSlots(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return slots, nil
	}
	if err = s.cache.Set(ctx, listingID, gen, slots); err != nil {
		s.logger.Warn("slot cache write failed",
			logger.String("listing_id", listingID),
			logger.String("error", err.Error()),
		)
	}

	return slots, nil
}

// ValidateStay rejects stays that start before the current UTC day.
func ValidateStay(r domain.DateRange, now time.Time) error {
	if r.CheckIn.Before(domain.TruncateDay(now)) {
		return fmt.Errorf("%w: check_in must not be in the past", domain.ErrValidation)
	}
	return nil
}
