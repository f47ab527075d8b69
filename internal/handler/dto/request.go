package dto

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateListingRequest struct {
	HostID        string `json:"host_id" binding:"required,uuid"`
	Title         string `json:"title" binding:"required"`
	PricePerNight int64  `json:"price_per_night" binding:"required,gt=0"`
	Currency      string `json:"currency"`
}

// DateRangeRequest carries dates as YYYY-MM-DD; check_out is exclusive.
type DateRangeRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type SetAvailabilityRequest struct {
	Windows []DateRangeRequest `json:"windows" binding:"dive"`
}

type CreateBookingRequest struct {
	UserID     string `json:"user_id" binding:"omitempty,uuid"`
	ListingID  string `json:"listing_id" binding:"required,uuid"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	TotalPrice int64  `json:"total_price" binding:"gte=0"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
