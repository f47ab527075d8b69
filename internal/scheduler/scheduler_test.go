package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresPending(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, log)

	expired := []*domain.Booking{
		{ID: "b1", ListingID: "l1", UserID: "u1", Status: domain.BookingStatusFailed},
	}
	expirer.EXPECT().ExpirePending(mock.Anything).Return(expired, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, log)

	expirer.EXPECT().ExpirePending(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, log) // interval longer than test
	expirer.EXPECT().ExpirePending(mock.Anything).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 30*time.Millisecond, log)

	expirer.EXPECT().ExpirePending(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(expirer.Calls)
	assert.GreaterOrEqual(t, calls, 4) // startup sweep + 3 ticks
}

func TestScheduler_SweepsOnStart(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	s := New(expirer, time.Hour, newTestLogger(t))

	expirer.EXPECT().ExpirePending(mock.Anything).Return(nil, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_Sweep_SummarizesByListing(t *testing.T) {
	in := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stay := func(offset, nights int) (time.Time, time.Time) {
		return in.AddDate(0, 0, offset), in.AddDate(0, 0, offset+nights)
	}
	booking := func(id, listingID string, offset, nights int, amount int64, currency string) *domain.Booking {
		checkIn, checkOut := stay(offset, nights)
		return &domain.Booking{
			ID: id, ListingID: listingID, UserID: "u-" + id,
			CheckIn: checkIn, CheckOut: checkOut,
			TotalPrice: amount, Currency: currency,
			Status: domain.BookingStatusFailed,
		}
	}

	tests := []struct {
		name    string
		expired []*domain.Booking
		want    []ListingExpiry
	}{
		{
			name:    "nothing expired",
			expired: nil,
			want:    []ListingExpiry{},
		},
		{
			name: "grouped and ordered by listing",
			expired: []*domain.Booking{
				booking("b1", "l2", 0, 3, 30000, "EUR"),
				booking("b2", "l1", 5, 2, 16000, "EUR"),
				booking("b3", "l2", 1, 4, 40000, "EUR"),
			},
			want: []ListingExpiry{
				{ListingID: "l1", Bookings: 1, Nights: 2, Amount: map[string]int64{"EUR": 16000}},
				{ListingID: "l2", Bookings: 2, Nights: 7, Amount: map[string]int64{"EUR": 70000}},
			},
		},
		{
			name: "currencies kept apart",
			expired: []*domain.Booking{
				booking("b1", "l1", 0, 1, 9000, "USD"),
				booking("b2", "l1", 3, 1, 8000, "EUR"),
			},
			want: []ListingExpiry{
				{ListingID: "l1", Bookings: 2, Nights: 2, Amount: map[string]int64{"USD": 9000, "EUR": 8000}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expirer := mocks.NewMockBookingExpirer(t)
			s := New(expirer, time.Hour, newTestLogger(t))
			expirer.EXPECT().ExpirePending(mock.Anything).Return(tt.expired, nil)

			assert.Equal(t, tt.want, s.Sweep(context.Background()))
		})
	}
}

func TestScheduler_Sweep_Error(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	s := New(expirer, time.Hour, newTestLogger(t))
	expirer.EXPECT().ExpirePending(mock.Anything).Return(nil, errors.New("db error"))

	assert.Nil(t, s.Sweep(context.Background()))
}
