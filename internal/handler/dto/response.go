package dto

import (
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type DateRangeResponse struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type ListingResponse struct {
	ID             string              `json:"id"`
	HostID         string              `json:"host_id"`
	Title          string              `json:"title"`
	PricePerNight  int64               `json:"price_per_night"`
	Currency       string              `json:"currency"`
	AvailableDates []DateRangeResponse `json:"available_dates"`
	BookedSlots    []DateRangeResponse `json:"booked_slots"`
	CreatedAt      string              `json:"created_at"`
}

type AvailabilityResponse struct {
	ListingID string `json:"listing_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	ListingID      string `json:"listing_id"`
	UserID         string `json:"user_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Nights         int    `json:"nights"`
	TotalPrice     int64  `json:"total_price"`
	Currency       string `json:"currency"`
	Status         string `json:"status"`
	PaymentOrderID string `json:"payment_order_id,omitempty"`
	PaymentID      string `json:"payment_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type PaymentOrderResponse struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	ClientSecret string `json:"client_secret,omitempty"`
}

type BookingOrderResponse struct {
	Booking      BookingResponse      `json:"booking"`
	PaymentOrder PaymentOrderResponse `json:"payment_order"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type WishlistItemResponse struct {
	ListingID string `json:"listing_id"`
	AddedAt   string `json:"added_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToDateRanges(ranges []domain.DateRange) []DateRangeResponse {
	res := make([]DateRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		res = append(res, DateRangeResponse{
			CheckIn:  r.CheckIn.Format(domain.DateLayout),
			CheckOut: r.CheckOut.Format(domain.DateLayout),
		})
	}
	return res
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:             l.ID,
		HostID:         l.HostID,
		Title:          l.Title,
		PricePerNight:  l.PricePerNight,
		Currency:       l.Currency,
		AvailableDates: ToDateRanges(l.AvailableDates),
		BookedSlots:    ToDateRanges(l.BookedSlots),
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		ListingID:      b.ListingID,
		UserID:         b.UserID,
		CheckIn:        b.CheckIn.Format(domain.DateLayout),
		CheckOut:       b.CheckOut.Format(domain.DateLayout),
		Nights:         b.Range().Nights(),
		TotalPrice:     b.TotalPrice,
		Currency:       b.Currency,
		Status:         string(b.Status),
		PaymentOrderID: b.PaymentOrderID,
		PaymentID:      b.PaymentID,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingOrderResponse(o *domain.BookingOrder) BookingOrderResponse {
	return BookingOrderResponse{
		Booking: ToBookingResponse(o.Booking),
		PaymentOrder: PaymentOrderResponse{
			ID:           o.Order.ID,
			Amount:       o.Order.Amount,
			Currency:     o.Order.Currency,
			ClientSecret: o.Order.ClientSecret,
		},
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToWishlistItemResponse(it *domain.WishlistItem) WishlistItemResponse {
	return WishlistItemResponse{
		ListingID: it.ListingID,
		AddedAt:   it.CreatedAt.Format(time.RFC3339),
	}
}
