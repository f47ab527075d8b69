package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
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

// futureStay returns a stay starting `offset` days from today.
func futureStay(offset, nights int) domain.DateRange {
	in := domain.TruncateDay(time.Now()).AddDate(0, 0, offset)
	return domain.DateRange{CheckIn: in, CheckOut: in.AddDate(0, 0, nights)}
}

// memStore keeps bookings, listings, users and slots in memory. A single mutex
// serializes every ledger mutation, which is stricter than the per-listing lock in Postgres.
type memStore struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
	listings map[string]*domain.Listing
	users    map[string]*domain.User
	slots    map[string][]slot
}

type slot struct {
	bookingID string
	r         domain.DateRange
}

func newMemStore() *memStore {
	return &memStore{
		bookings: make(map[string]*domain.Booking),
		listings: make(map[string]*domain.Listing),
		users:    make(map[string]*domain.User),
		slots:    make(map[string][]slot),
	}
}

func (m *memStore) addListing(l *domain.Listing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[l.ID] = l
}

func (m *memStore) addUser(u *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

func (m *memStore) status(id string) domain.BookingStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings[id].Status
}

// BookingRepo

func (m *memStore) Create(_ context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memStore) GetByPaymentOrder(_ context.Context, orderID string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.PaymentOrderID == orderID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (m *memStore) SetPaymentOrder(_ context.Context, bookingID, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[bookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.PaymentOrderID = orderID
	return nil
}

func (m *memStore) MarkFailed(_ context.Context, bookingID string, ref domain.PaymentRef) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingStatusPending {
		return nil, domain.ErrInvalidState
	}
	b.Status = domain.BookingStatusFailed
	b.PaymentID, b.PaymentSignature = ref.PaymentID, ref.Signature
	cp := *b
	return &cp, nil
}

func (m *memStore) ExpirePending(_ context.Context, createdBefore time.Time) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Booking
	for _, b := range m.bookings {
		if b.Status == domain.BookingStatusPending && b.CreatedAt.Before(createdBefore) {
			b.Status = domain.BookingStatusFailed
			cp := *b
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m *memStore) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	return m.filter(func(b *domain.Booking) bool { return b.UserID == userID }), nil
}

func (m *memStore) ListByListing(_ context.Context, listingID string) ([]*domain.Booking, error) {
	return m.filter(func(b *domain.Booking) bool { return b.ListingID == listingID }), nil
}

func (m *memStore) filter(keep func(b *domain.Booking) bool) []*domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Booking
	for _, b := range m.bookings {
		if keep(b) {
			cp := *b
			res = append(res, &cp)
		}
	}
	return res
}

// ReservationLedger

func (m *memStore) Confirm(_ context.Context, bookingID string, ref domain.PaymentRef) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingStatusPending {
		return nil, domain.ErrInvalidState
	}

	b.PaymentID, b.PaymentSignature = ref.PaymentID, ref.Signature
	for _, s := range m.slots[b.ListingID] {
		if s.r.Overlaps(b.Range()) {
			b.Status = domain.BookingStatusFailed
			cp := *b
			return &cp, domain.ErrConflict
		}
	}

	m.slots[b.ListingID] = append(m.slots[b.ListingID], slot{bookingID: b.ID, r: b.Range()})
	b.Status = domain.BookingStatusConfirmed
	cp := *b
	return &cp, nil
}

func (m *memStore) Cancel(_ context.Context, bookingID string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if !b.Status.CanTransition(domain.BookingStatusCancelled) {
		return nil, domain.ErrInvalidState
	}

	kept := m.slots[b.ListingID][:0]
	for _, s := range m.slots[b.ListingID] {
		if s.bookingID != b.ID {
			kept = append(kept, s)
		}
	}
	m.slots[b.ListingID] = kept
	b.Status = domain.BookingStatusCancelled
	cp := *b
	return &cp, nil
}

func (m *memStore) BookedSlots(_ context.Context, listingID string) ([]domain.DateRange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]domain.DateRange, 0, len(m.slots[listingID]))
	for _, s := range m.slots[listingID] {
		res = append(res, s.r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CheckIn.Before(res[j].CheckIn) })
	return res, nil
}

// memListings adapts memStore to ports.ListingRepo.
type memListings struct{ *memStore }

func (m memListings) Create(_ context.Context, l *domain.Listing) error {
	m.addListing(l)
	return nil
}

func (m memListings) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	cp := *l
	return &cp, nil
}

func (m memListings) List(_ context.Context) ([]*domain.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Listing
	for _, l := range m.listings {
		cp := *l
		res = append(res, &cp)
	}
	return res, nil
}

func (m memListings) SetAvailability(_ context.Context, listingID string, windows []domain.DateRange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[listingID]
	if !ok {
		return domain.ErrListingNotFound
	}
	l.AvailableDates = windows
	return nil
}

// memUsers adapts memStore to ports.UserRepo.
type memUsers struct{ *memStore }

func (m memUsers) Create(_ context.Context, u *domain.User) error {
	m.addUser(u)
	return nil
}

func (m memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m memUsers) List(_ context.Context) ([]*domain.User, error) {
	return nil, nil
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]domain.DateRange, bool, error) { return nil, false, nil }
func (nopCache) Generation(context.Context, string) (int64, error)             { return 0, nil }
func (nopCache) Set(context.Context, string, int64, []domain.DateRange) error  { return nil }
func (nopCache) Invalidate(context.Context, string) error                      { return nil }

type nopNotifier struct{}

func (nopNotifier) NotifyBookingCreated(context.Context, *domain.User, *domain.Listing, *domain.Booking) {
}
func (nopNotifier) NotifyBookingConfirmed(context.Context, *domain.User, *domain.Listing, *domain.Booking) {
}
func (nopNotifier) NotifyBookingFailed(context.Context, *domain.User, *domain.Listing, *domain.Booking) {
}
func (nopNotifier) NotifyBookingCancelled(context.Context, *domain.User, *domain.Listing, *domain.Booking) {
}

// fakeGateway issues sequential order ids and accepts "ok:<order>|<payment>" signatures.
type fakeGateway struct {
	mu  sync.Mutex
	seq int
}

func (g *fakeGateway) CreateOrder(_ context.Context, _ string, amount int64, currency string) (*domain.PaymentOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return &domain.PaymentOrder{ID: fmt.Sprintf("order_%d", g.seq), Amount: amount, Currency: currency}, nil
}

func (g *fakeGateway) VerifyPayment(_ context.Context, in domain.PaymentVerification, _ int64) (bool, error) {
	return in.Signature == sign(in.OrderID, in.PaymentID), nil
}

func sign(orderID, paymentID string) string {
	return "ok:" + orderID + "|" + paymentID
}

type fixture struct {
	store   *memStore
	svc     *BookingService
	listing *domain.Listing
	guests  []*domain.User
}

func newFixture(t *testing.T, guests int) *fixture {
	t.Helper()
	store := newMemStore()
	log := newTestLogger(t)

	listing := &domain.Listing{ID: "l1", HostID: "host1", Title: "Loft", PricePerNight: 10000, Currency: "USD"}
	store.addListing(listing)

	f := &fixture{store: store, listing: listing}
	for i := 0; i < guests; i++ {
		u := &domain.User{ID: fmt.Sprintf("guest%d", i), Username: fmt.Sprintf("guest%d", i)}
		store.addUser(u)
		f.guests = append(f.guests, u)
	}

	availability := NewAvailabilityService(memListings{store}, store, nopCache{}, true, log)
	f.svc = NewBookingService(store, store, memUsers{store}, &fakeGateway{}, availability, nopNotifier{}, 15*time.Minute, 365, log)
	return f
}
