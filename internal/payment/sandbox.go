package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
)

// SandboxGateway issues local order ids without contacting a provider.
// Used in development and when no Stripe key is configured.
type SandboxGateway struct {
	signer *Signer
}

func NewSandboxGateway(signer *Signer) *SandboxGateway {
	return &SandboxGateway{signer: signer}
}

func (g *SandboxGateway) CreateOrder(_ context.Context, bookingID string, amount int64, currency string) (*domain.PaymentOrder, error) {
	id := "order_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return &domain.PaymentOrder{
		ID:           id,
		Amount:       amount,
		Currency:     currency,
		ClientSecret: "sandbox_" + bookingID,
	}, nil
}

// VerifyPayment trusts the signature alone: there is no provider to ask.
func (g *SandboxGateway) VerifyPayment(_ context.Context, in domain.PaymentVerification, _ int64) (bool, error) {
	return g.signer.Verify(in.OrderID, in.PaymentID, in.Signature), nil
}
