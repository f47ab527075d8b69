package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/StayBooker/internal/handler/mocks"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testDeps struct {
	listings *hmocks.MockListingSvc
	bookings *hmocks.MockBookingSvc
	users    *hmocks.MockUserSvc
	wishlist *hmocks.MockWishlistSvc
	router   http.Handler
}

func setupRouter(t *testing.T) *testDeps {
	t.Helper()
	d := &testDeps{
		listings: hmocks.NewMockListingSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		wishlist: hmocks.NewMockWishlistSvc(t),
	}

	h := NewHandler(d.listings, d.bookings, d.users, d.wishlist)

	r := ginext.New("test")
	r.Use(middleware.Actor())
	api := r.Group("/api")
	{
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/availability", h.CheckAvailability)
		api.PUT("/listings/:id/availability", h.SetAvailability)
		api.GET("/listings/:id/bookings", h.GetListingBookings)
		api.POST("/bookings", h.CreateBooking)
		api.POST("/bookings/verify", h.VerifyPayment)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.PATCH("/admin/bookings/:id/status", h.UpdateBookingStatus)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/users/:id/wishlist", h.GetWishlist)
		api.DELETE("/users/:id/wishlist", h.ClearWishlist)
		api.POST("/users/:id/wishlist/:listing_id", h.AddToWishlist)
		api.DELETE("/users/:id/wishlist/:listing_id", h.RemoveFromWishlist)
	}
	d.router = r

	return d
}

func (d *testDeps) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

func day(offset int) time.Time {
	return domain.TruncateDay(time.Now()).AddDate(0, 0, offset)
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         uuid.New().String(),
		ListingID:  uuid.New().String(),
		UserID:     uuid.New().String(),
		CheckIn:    day(10),
		CheckOut:   day(13),
		TotalPrice: 36000,
		Currency:   "USD",
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	d := setupRouter(t)

	hostID := uuid.New().String()
	listing := &domain.Listing{
		ID:            uuid.New().String(),
		HostID:        hostID,
		Title:         "Sea view loft",
		PricePerNight: 12000,
		Currency:      "USD",
		CreatedAt:     time.Now(),
	}

	d.listings.EXPECT().Create(mock.Anything, domain.CreateListingInput{
		HostID:        hostID,
		Title:         "Sea view loft",
		PricePerNight: 12000,
		Currency:      "usd",
	}).Return(listing, nil)

	w := d.do(http.MethodPost, "/api/listings", dto.CreateListingRequest{
		HostID:        hostID,
		Title:         "Sea view loft",
		PricePerNight: 12000,
		Currency:      "usd",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sea view loft", resp.Title)
	assert.Empty(t, resp.BookedSlots)
}

func TestHandler_CreateListing_BadRequest(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodPost, "/api/listings", `{"title":"x","price_per_night":0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_Success(t *testing.T) {
	d := setupRouter(t)

	id := uuid.New().String()
	listing := &domain.Listing{
		ID:             id,
		Title:          "Loft",
		AvailableDates: []domain.DateRange{{CheckIn: day(1), CheckOut: day(30)}},
		BookedSlots:    []domain.DateRange{{CheckIn: day(5), CheckOut: day(8)}},
	}
	d.listings.EXPECT().GetDetails(mock.Anything, id).Return(listing, nil)

	w := d.do(http.MethodGet, "/api/listings/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.BookedSlots, 1)
	assert.Equal(t, day(5).Format(domain.DateLayout), resp.BookedSlots[0].CheckIn)
	assert.Equal(t, day(8).Format(domain.DateLayout), resp.BookedSlots[0].CheckOut)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodGet, "/api/listings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	d := setupRouter(t)

	id := uuid.New().String()
	d.listings.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrListingNotFound)

	w := d.do(http.MethodGet, "/api/listings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListListings(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().List(mock.Anything).Return([]*domain.Listing{{ID: "l1"}, {ID: "l2"}}, nil)

	w := d.do(http.MethodGet, "/api/listings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_CheckAvailability(t *testing.T) {
	d := setupRouter(t)

	id := uuid.New().String()
	in, out := day(10).Format(domain.DateLayout), day(12).Format(domain.DateLayout)

	d.listings.EXPECT().
		IsRangeFree(mock.Anything, id, mock.MatchedBy(func(r domain.DateRange) bool {
			return r.CheckIn.Equal(day(10)) && r.CheckOut.Equal(day(12))
		})).
		Return(false, nil)

	w := d.do(http.MethodGet, "/api/listings/"+id+"/availability?check_in="+in+"&check_out="+out, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, in, resp.CheckIn)
}

func TestHandler_CheckAvailability_InvalidRange(t *testing.T) {
	d := setupRouter(t)
	id := uuid.New().String()

	tests := []struct {
		name  string
		query string
	}{
		{"missing", ""},
		{"bad format", "?check_in=10.03.2030&check_out=12.03.2030"},
		{"inverted", "?check_in=2030-03-12&check_out=2030-03-10"},
		{"empty stay", "?check_in=2030-03-10&check_out=2030-03-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := d.do(http.MethodGet, "/api/listings/"+id+"/availability"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_SetAvailability(t *testing.T) {
	d := setupRouter(t)

	id := uuid.New().String()
	hostID := uuid.New().String()
	actor := domain.Actor{UserID: hostID, Role: domain.RoleHost}

	d.listings.EXPECT().
		SetAvailability(mock.Anything, id, actor, mock.MatchedBy(func(w []domain.DateRange) bool {
			return len(w) == 1 && w[0].CheckIn.Equal(day(1)) && w[0].CheckOut.Equal(day(60))
		})).
		Return(&domain.Listing{ID: id, HostID: hostID}, nil)

	body := dto.SetAvailabilityRequest{Windows: []dto.DateRangeRequest{{
		CheckIn:  day(1).Format(domain.DateLayout),
		CheckOut: day(60).Format(domain.DateLayout),
	}}}
	w := d.do(http.MethodPut, "/api/listings/"+id+"/availability", body,
		middleware.UserIDHeader, hostID, middleware.UserRoleHeader, "host")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetAvailability_RequiresActor(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodPut, "/api/listings/"+uuid.New().String()+"/availability", `{"windows":[]}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_SetAvailability_Forbidden(t *testing.T) {
	d := setupRouter(t)

	id := uuid.New().String()
	d.listings.EXPECT().SetAvailability(mock.Anything, id, mock.Anything, mock.Anything).Return(nil, domain.ErrForbidden)

	w := d.do(http.MethodPut, "/api/listings/"+id+"/availability", `{"windows":[]}`,
		middleware.UserIDHeader, uuid.New().String())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetListingBookings(t *testing.T) {
	d := setupRouter(t)

	id := uuid.New().String()
	d.bookings.EXPECT().ListByListing(mock.Anything, id).Return([]*domain.Booking{testBooking(domain.BookingStatusConfirmed)}, nil)

	w := d.do(http.MethodGet, "/api/listings/"+id+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 3, resp[0].Nights)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	d := setupRouter(t)

	b := testBooking(domain.BookingStatusPending)
	order := &domain.BookingOrder{
		Booking: b,
		Order:   &domain.PaymentOrder{ID: "pi_123", Amount: b.TotalPrice, Currency: "USD", ClientSecret: "secret"},
	}

	d.bookings.EXPECT().Create(mock.Anything, domain.CreateBookingInput{
		UserID:    b.UserID,
		ListingID: b.ListingID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
	}).Return(order, nil)

	w := d.do(http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ListingID: b.ListingID,
		CheckIn:   b.CheckIn.Format(domain.DateLayout),
		CheckOut:  b.CheckOut.Format(domain.DateLayout),
	}, middleware.UserIDHeader, b.UserID)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Booking.Status)
	assert.Equal(t, "pi_123", resp.PaymentOrder.ID)
	assert.Equal(t, int64(36000), resp.PaymentOrder.Amount)
}

func TestHandler_CreateBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"listing not found", domain.ErrListingNotFound, http.StatusNotFound},
		{"gateway", domain.ErrPaymentGateway, http.StatusBadGateway},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, tt.err)

			userID := uuid.New().String()
			w := d.do(http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
				UserID:    userID,
				ListingID: uuid.New().String(),
				CheckIn:   day(3).Format(domain.DateLayout),
				CheckOut:  day(5).Format(domain.DateLayout),
			}, middleware.UserIDHeader, userID)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_CreateBooking_InvalidDates(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ListingID: uuid.New().String(),
		CheckIn:   day(5).Format(domain.DateLayout),
		CheckOut:  day(5).Format(domain.DateLayout),
	}, middleware.UserIDHeader, uuid.New().String())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Identity(t *testing.T) {
	self := uuid.New().String()
	other := uuid.New().String()

	tests := []struct {
		name     string
		bodyUser string
		headers  []string
		wantUser string
		code     int
	}{
		{name: "anonymous", bodyUser: self, code: http.StatusUnauthorized},
		{name: "body names another guest", bodyUser: other, headers: []string{middleware.UserIDHeader, self}, code: http.StatusForbidden},
		{name: "host cannot book for guest", bodyUser: other, headers: []string{middleware.UserIDHeader, self, middleware.UserRoleHeader, "host"}, code: http.StatusForbidden},
		{name: "body matches caller", bodyUser: self, headers: []string{middleware.UserIDHeader, self}, wantUser: self, code: http.StatusCreated},
		{name: "admin books for guest", bodyUser: other, headers: []string{middleware.UserIDHeader, self, middleware.UserRoleHeader, "admin"}, wantUser: other, code: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			listingID := uuid.New().String()
			if tt.wantUser != "" {
				b := testBooking(domain.BookingStatusPending)
				d.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
					return in.UserID == tt.wantUser && in.ListingID == listingID
				})).Return(&domain.BookingOrder{Booking: b, Order: &domain.PaymentOrder{ID: "pi_1"}}, nil)
			}

			w := d.do(http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
				UserID:    tt.bodyUser,
				ListingID: listingID,
				CheckIn:   day(3).Format(domain.DateLayout),
				CheckOut:  day(5).Format(domain.DateLayout),
			}, tt.headers...)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_VerifyPayment(t *testing.T) {
	d := setupRouter(t)

	b := testBooking(domain.BookingStatusConfirmed)
	in := domain.PaymentVerification{OrderID: "pi_1", PaymentID: "pay_1", Signature: "sig"}
	d.bookings.EXPECT().VerifyPayment(mock.Anything, in).Return(b, nil)

	w := d.do(http.MethodPost, "/api/bookings/verify", dto.VerifyPaymentRequest{
		OrderID: "pi_1", PaymentID: "pay_1", Signature: "sig",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_VerifyPayment_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"bad signature", domain.ErrPaymentVerification, http.StatusPaymentRequired},
		{"lost the race", domain.ErrConflict, http.StatusConflict},
		{"not pending", domain.ErrInvalidState, http.StatusConflict},
		{"unknown order", domain.ErrBookingNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			d.bookings.EXPECT().VerifyPayment(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := d.do(http.MethodPost, "/api/bookings/verify", `{"order_id":"o","payment_id":"p","signature":"s"}`)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_VerifyPayment_MissingFields(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodPost, "/api/bookings/verify", `{"order_id":"o"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	d := setupRouter(t)

	b := testBooking(domain.BookingStatusCancelled)
	actor := domain.Actor{UserID: b.UserID, Role: domain.RoleGuest}
	d.bookings.EXPECT().Cancel(mock.Anything, b.ID, actor).Return(b, nil)

	w := d.do(http.MethodPost, "/api/bookings/"+b.ID+"/cancel", nil, middleware.UserIDHeader, b.UserID)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_Errors(t *testing.T) {
	d := setupRouter(t)
	id := uuid.New().String()

	w := d.do(http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = d.do(http.MethodPost, "/api/bookings/"+id+"/cancel", nil,
		middleware.UserIDHeader, "u1", middleware.UserRoleHeader, "superuser")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	d.bookings.EXPECT().Cancel(mock.Anything, id, mock.Anything).Return(nil, domain.ErrForbidden).Once()
	w = d.do(http.MethodPost, "/api/bookings/"+id+"/cancel", nil, middleware.UserIDHeader, "stranger")
	assert.Equal(t, http.StatusForbidden, w.Code)

	d.bookings.EXPECT().Cancel(mock.Anything, id, mock.Anything).Return(nil, domain.ErrInvalidState).Once()
	w = d.do(http.MethodPost, "/api/bookings/"+id+"/cancel", nil, middleware.UserIDHeader, "owner")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	d := setupRouter(t)

	b := testBooking(domain.BookingStatusConfirmed)
	d.bookings.EXPECT().UpdateStatus(mock.Anything, b.ID, domain.BookingStatusConfirmed).Return(b, nil)

	w := d.do(http.MethodPatch, "/api/admin/bookings/"+b.ID+"/status", dto.UpdateStatusRequest{Status: "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = d.do(http.MethodPatch, "/api/admin/bookings/"+b.ID+"/status", dto.UpdateStatusRequest{Status: "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	d := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "anna", CreatedAt: time.Now()}
	d.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Username: "anna"}).Return(user, nil)

	w := d.do(http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "anna"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "anna", resp.Username)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := d.do(http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "anna"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}}, nil)

	w := d.do(http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetUserBookings(t *testing.T) {
	d := setupRouter(t)

	userID := uuid.New().String()
	d.bookings.EXPECT().ListByUser(mock.Anything, userID).Return([]*domain.Booking{}, nil)

	w := d.do(http.MethodGet, "/api/users/"+userID+"/bookings", nil, middleware.UserIDHeader, userID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// --- Wishlist ---

func TestHandler_Wishlist(t *testing.T) {
	d := setupRouter(t)

	userID := uuid.New().String()
	listingID := uuid.New().String()

	d.wishlist.EXPECT().Add(mock.Anything, userID, listingID).Return(nil)
	d.wishlist.EXPECT().List(mock.Anything, userID).Return([]*domain.WishlistItem{
		{UserID: userID, ListingID: listingID, CreatedAt: time.Now()},
	}, nil)
	d.wishlist.EXPECT().Remove(mock.Anything, userID, listingID).Return(nil)
	d.wishlist.EXPECT().Clear(mock.Anything, userID).Return(nil)

	w := d.do(http.MethodPost, "/api/users/"+userID+"/wishlist/"+listingID, nil, middleware.UserIDHeader, userID)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = d.do(http.MethodGet, "/api/users/"+userID+"/wishlist", nil, middleware.UserIDHeader, userID)
	assert.Equal(t, http.StatusOK, w.Code)
	var items []dto.WishlistItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, listingID, items[0].ListingID)

	w = d.do(http.MethodDelete, "/api/users/"+userID+"/wishlist/"+listingID, nil, middleware.UserIDHeader, userID)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = d.do(http.MethodDelete, "/api/users/"+userID+"/wishlist", nil, middleware.UserIDHeader, userID)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Wishlist_UnknownListing(t *testing.T) {
	d := setupRouter(t)

	userID := uuid.New().String()
	listingID := uuid.New().String()
	d.wishlist.EXPECT().Add(mock.Anything, userID, listingID).Return(domain.ErrListingNotFound)

	w := d.do(http.MethodPost, "/api/users/"+userID+"/wishlist/"+listingID, nil, middleware.UserIDHeader, userID)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UserScopedRoutes_Ownership(t *testing.T) {
	owner := uuid.New().String()
	stranger := uuid.New().String()
	listingID := uuid.New().String()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/" + owner + "/bookings"},
		{http.MethodGet, "/api/users/" + owner + "/wishlist"},
		{http.MethodDelete, "/api/users/" + owner + "/wishlist"},
		{http.MethodPost, "/api/users/" + owner + "/wishlist/" + listingID},
		{http.MethodDelete, "/api/users/" + owner + "/wishlist/" + listingID},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			d := setupRouter(t)

			w := d.do(r.method, r.path, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w = d.do(r.method, r.path, nil, middleware.UserIDHeader, stranger)
			assert.Equal(t, http.StatusForbidden, w.Code)

			w = d.do(r.method, r.path, nil, middleware.UserIDHeader, stranger, middleware.UserRoleHeader, "host")
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestHandler_Wishlist_AdminActsForUser(t *testing.T) {
	d := setupRouter(t)

	userID := uuid.New().String()
	d.wishlist.EXPECT().Clear(mock.Anything, userID).Return(nil)

	w := d.do(http.MethodDelete, "/api/users/"+userID+"/wishlist", nil,
		middleware.UserIDHeader, uuid.New().String(), middleware.UserRoleHeader, "admin")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
