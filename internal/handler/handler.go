package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error)
	GetDetails(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	IsRangeFree(ctx context.Context, listingID string, r domain.DateRange) (bool, error)
	SetAvailability(ctx context.Context, listingID string, actor domain.Actor, windows []domain.DateRange) (*domain.Listing, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingOrder, error)
	VerifyPayment(ctx context.Context, in domain.PaymentVerification) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Booking, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type WishlistSvc interface {
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error
	Clear(ctx context.Context, userID string) error
	List(ctx context.Context, userID string) ([]*domain.WishlistItem, error)
}

type Handler struct {
	listingService  ListingSvc
	bookingService  BookingSvc
	userService     UserSvc
	wishlistService WishlistSvc
}

func NewHandler(listingService ListingSvc, bookingService BookingSvc, userService UserSvc, wishlistService WishlistSvc) *Handler {
	return &Handler{
		listingService:  listingService,
		bookingService:  bookingService,
		userService:     userService,
		wishlistService: wishlistService,
	}
}

// Listings

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateListingInput{
		HostID:        req.HostID,
		Title:         req.Title,
		PricePerNight: req.PricePerNight,
		Currency:      req.Currency,
	}

	listing, err := h.listingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	listing, err := h.listingService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) ListListings(c *ginext.Context) {
	listings, err := h.listingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	stay, err := domain.ParseDateRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	free, err := h.listingService.IsRangeFree(c.Request.Context(), id, stay)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		ListingID: id,
		CheckIn:   stay.CheckIn.Format(domain.DateLayout),
		CheckOut:  stay.CheckOut.Format(domain.DateLayout),
		Available: free,
	})
}

func (h *Handler) SetAvailability(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	windows := make([]domain.DateRange, 0, len(req.Windows))
	for _, w := range req.Windows {
		r, err := domain.ParseDateRange(w.CheckIn, w.CheckOut)
		if err != nil {
			h.handleError(c, err)
			return
		}
		windows = append(windows, r)
	}

	listing, err := h.listingService.SetAvailability(c.Request.Context(), id, actor, windows)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) GetListingBookings(c *ginext.Context) {
	id, ok := pathID(c, "id", "listing")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByListing(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Bookings

// CreateBooking books on behalf of the caller. Only an admin may name another guest in user_id.
func (h *Handler) CreateBooking(c *ginext.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	userID := actor.UserID
	if req.UserID != "" && req.UserID != actor.UserID {
		if !actor.IsAdmin() {
			h.handleError(c, domain.ErrForbidden)
			return
		}
		userID = req.UserID
	}

	stay, err := domain.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	order, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		UserID:     userID,
		ListingID:  req.ListingID,
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingOrderResponse(order))
}

func (h *Handler) VerifyPayment(c *ginext.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.VerifyPayment(c.Request.Context(), domain.PaymentVerification{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status := domain.BookingStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown booking status"})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Wishlist

func (h *Handler) GetWishlist(c *ginext.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	items, err := h.wishlistService.List(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.WishlistItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToWishlistItemResponse(it))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddToWishlist(c *ginext.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}
	listingID, ok := pathID(c, "listing_id", "listing")
	if !ok {
		return
	}

	if err := h.wishlistService.Add(c.Request.Context(), userID, listingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveFromWishlist(c *ginext.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}
	listingID, ok := pathID(c, "listing_id", "listing")
	if !ok {
		return
	}

	if err := h.wishlistService.Remove(c.Request.Context(), userID, listingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearWishlist(c *ginext.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	if err := h.wishlistService.Clear(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func pathID(c *ginext.Context, param, entity string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + entity + " id"})
		return "", false
	}
	return id, true
}

// ownUserID reads the :id user parameter and lets through only that user or an admin.
func ownUserID(c *ginext.Context) (string, bool) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return "", false
	}
	actor, ok := requireActor(c)
	if !ok {
		return "", false
	}
	if !actor.IsAdmin() && actor.UserID != userID {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return "", false
	}
	return userID, true
}

func requireActor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing " + middleware.UserIDHeader})
		return domain.Actor{}, false
	}
	return actor, true
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentVerification):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentGateway):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
