package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway opens a PaymentIntent per booking. The intent id is the order id
// the client echoes back on verification.
type StripeGateway struct {
	api    *client.API
	signer *Signer
}

func NewStripeGateway(secretKey string, signer *Signer) *StripeGateway {
	return newStripeGateway(secretKey, nil, signer)
}

func newStripeGateway(secretKey string, backends *stripe.Backends, signer *Signer) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeGateway{api: api, signer: signer}
}

func (g *StripeGateway) CreateOrder(ctx context.Context, bookingID string, amount int64, currency string) (*domain.PaymentOrder, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(currency)),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", bookingID)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: stripe: %v", domain.ErrPaymentGateway, err)
	}

	return &domain.PaymentOrder{
		ID:           pi.ID,
		Amount:       pi.Amount,
		Currency:     strings.ToUpper(string(pi.Currency)),
		ClientSecret: pi.ClientSecret,
	}, nil
}

// VerifyPayment checks the callback signature, then asks Stripe whether the intent
// behind the order actually settled for the booked amount.
func (g *StripeGateway) VerifyPayment(ctx context.Context, in domain.PaymentVerification, amount int64) (bool, error) {
	if !g.signer.Verify(in.OrderID, in.PaymentID, in.Signature) {
		return false, nil
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.Get(in.OrderID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("stripe: %w", err)
	}

	return intentSettled(pi, in.PaymentID, amount), nil
}

func intentSettled(pi *stripe.PaymentIntent, paymentID string, amount int64) bool {
	if pi == nil || pi.Status != stripe.PaymentIntentStatusSucceeded {
		return false
	}
	if pi.Amount != amount || pi.AmountReceived != amount {
		return false
	}
	if pi.LatestCharge != nil && pi.LatestCharge.ID != "" && pi.LatestCharge.ID != paymentID {
		return false
	}
	return true
}
