package scheduler

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	ExpirePending(ctx context.Context) ([]*domain.Booking, error)
}

type Scheduler struct {
	bookingService bookingExpirer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("booking reaper started",
		logger.Duration("interval", s.interval),
	)

	// pending bookings that outlived the TTL while the service was down
	s.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("booking reaper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// ListingExpiry sums up what one sweep released on a listing.
type ListingExpiry struct {
	ListingID string
	Bookings  int
	Nights    int
	// Amount is keyed by currency; a listing may change currency between bookings.
	Amount    map[string]int64
}

// Sweep fails expired pending bookings and reports them per listing, ordered by listing id.
func (s *Scheduler) Sweep(ctx context.Context) []ListingExpiry {
	expired, err := s.bookingService.ExpirePending(ctx)
	if err != nil {
		s.logger.Error("failed to expire pending bookings",
			logger.String("error", err.Error()),
		)
		return nil
	}

	for _, b := range expired {
		s.logger.Info("pending booking expired",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("listing_id", b.ListingID),
			logger.String("stay", b.Range().String()),
			logger.Int("nights", b.Range().Nights()),
			logger.Duration("pending_for", b.UpdatedAt.Sub(b.CreatedAt)),
		)
	}

	summary := summarize(expired)
	for _, e := range summary {
		s.logger.Info("listing dates released",
			logger.String("listing_id", e.ListingID),
			logger.Int("bookings", e.Bookings),
			logger.Int("nights", e.Nights),
			logger.Any("amount", e.Amount),
		)
	}

	return summary
}

func summarize(expired []*domain.Booking) []ListingExpiry {
	byListing := make(map[string]*ListingExpiry)
	for _, b := range expired {
		e, ok := byListing[b.ListingID]
		if !ok {
			e = &ListingExpiry{ListingID: b.ListingID, Amount: make(map[string]int64)}
			byListing[b.ListingID] = e
		}
		e.Bookings++
		e.Nights += b.Range().Nights()
		e.Amount[b.Currency] += b.TotalPrice
	}

	res := make([]ListingExpiry, 0, len(byListing))
	for _, e := range byListing {
		res = append(res, *e)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ListingID < res[j].ListingID })
	return res
}
