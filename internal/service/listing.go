package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

const defaultCurrency = "USD"

type ListingService struct {
	repo         ports.ListingRepo
	availability *AvailabilityService
}

func NewListingService(repo ports.ListingRepo, availability *AvailabilityService) *ListingService {
	return &ListingService{
		repo:         repo,
		availability: availability,
	}
}

func (s *ListingService) Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error) {
	if input.HostID == "" {
		return nil, fmt.Errorf("%w: host_id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.PricePerNight <= 0 {
		return nil, fmt.Errorf("%w: price_per_night must be positive", domain.ErrValidation)
	}

	currency := strings.ToUpper(input.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency must be an ISO 4217 code", domain.ErrValidation)
	}

	now := time.Now().UTC()
	listing := &domain.Listing{
		ID:            uuid.New().String(),
		HostID:        input.HostID,
		Title:         strings.TrimSpace(input.Title),
		PricePerNight: input.PricePerNight,
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	return listing, nil
}

func (s *ListingService) GetDetails(ctx context.Context, id string) (*domain.Listing, error) {
	return s.availability.Snapshot(ctx, id)
}

func (s *ListingService) List(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.List(ctx)
}

func (s *ListingService) IsRangeFree(ctx context.Context, listingID string, r domain.DateRange) (bool, error) {
	return s.availability.IsRangeFree(ctx, listingID, r)
}

// SetAvailability replaces the host-declared windows. Windows must not overlap each other.
func (s *ListingService) SetAvailability(
	ctx context.Context,
	listingID string,
	actor domain.Actor,
	windows []domain.DateRange,
) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !actor.IsAdmin() && listing.HostID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	normalized, err := normalizeWindows(windows)
	if err != nil {
		return nil, err
	}

	if err = s.repo.SetAvailability(ctx, listingID, normalized); err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}
	listing.AvailableDates = normalized

	return listing, nil
}

func normalizeWindows(windows []domain.DateRange) ([]domain.DateRange, error) {
	out := make([]domain.DateRange, 0, len(windows))
	for _, w := range windows {
		r, err := domain.NewDateRange(w.CheckIn, w.CheckOut)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckIn.Before(out[j].CheckIn)
	})

	for i := 1; i < len(out); i++ {
		if out[i-1].Overlaps(out[i]) {
			return nil, fmt.Errorf("%w: availability windows %s and %s overlap",
				domain.ErrValidation, out[i-1], out[i])
		}
	}

	return out, nil
}
