package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type PaymentGateway interface {
	CreateOrder(ctx context.Context, bookingID string, amount int64, currency string) (*domain.PaymentOrder, error)
	// VerifyPayment reports whether the callback is authentic and the provider holds a settled
	// payment of amount for the order. A non-nil error means the provider could not be asked.
	VerifyPayment(ctx context.Context, in domain.PaymentVerification, amount int64) (bool, error)
}
