package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestSigner(t *testing.T) {
	s := NewSigner("secret")

	sig := s.Sign("order_1", "pay_1")
	assert.Len(t, sig, 64)
	assert.True(t, s.Verify("order_1", "pay_1", sig))

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
	}{
		{"other payment", "order_1", "pay_2", sig},
		{"other order", "order_2", "pay_1", sig},
		{"tampered", "order_1", "pay_1", sig[:63] + "0"},
		{"empty signature", "order_1", "pay_1", ""},
		{"empty payment", "order_1", "", s.Sign("order_1", "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, s.Verify(tt.orderID, tt.paymentID, tt.signature))
		})
	}

	assert.False(t, NewSigner("other").Verify("order_1", "pay_1", sig))
}

func TestSandboxGateway(t *testing.T) {
	signer := NewSigner("secret")
	g := NewSandboxGateway(signer)

	a, err := g.CreateOrder(context.Background(), "b1", 25000, "USD")
	require.NoError(t, err)
	b, err := g.CreateOrder(context.Background(), "b2", 100, "USD")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, int64(25000), a.Amount)
	assert.Equal(t, "USD", a.Currency)

	ok, err := g.VerifyPayment(context.Background(), domain.PaymentVerification{
		OrderID: a.ID, PaymentID: "pay_1", Signature: signer.Sign(a.ID, "pay_1"),
	}, 25000)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.VerifyPayment(context.Background(), domain.PaymentVerification{
		OrderID: b.ID, PaymentID: "pay_1", Signature: signer.Sign(a.ID, "pay_1"),
	}, 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIntentSettled(t *testing.T) {
	settled := func() *stripe.PaymentIntent {
		return &stripe.PaymentIntent{
			ID:             "pi_1",
			Status:         stripe.PaymentIntentStatusSucceeded,
			Amount:         16000,
			AmountReceived: 16000,
			LatestCharge:   &stripe.Charge{ID: "ch_1"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(pi *stripe.PaymentIntent)
		paymentID string
		want      bool
	}{
		{name: "settled", mutate: func(*stripe.PaymentIntent) {}, paymentID: "ch_1", want: true},
		{name: "charge not expanded", mutate: func(pi *stripe.PaymentIntent) { pi.LatestCharge = nil }, paymentID: "ch_1", want: true},
		{name: "requires payment method", mutate: func(pi *stripe.PaymentIntent) {
			pi.Status = stripe.PaymentIntentStatusRequiresPaymentMethod
		}, paymentID: "ch_1"},
		{name: "processing", mutate: func(pi *stripe.PaymentIntent) { pi.Status = stripe.PaymentIntentStatusProcessing }, paymentID: "ch_1"},
		{name: "amount differs", mutate: func(pi *stripe.PaymentIntent) { pi.Amount = 100 }, paymentID: "ch_1"},
		{name: "partially received", mutate: func(pi *stripe.PaymentIntent) { pi.AmountReceived = 8000 }, paymentID: "ch_1"},
		{name: "other charge", mutate: func(*stripe.PaymentIntent) {}, paymentID: "ch_2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pi := settled()
			tt.mutate(pi)
			assert.Equal(t, tt.want, intentSettled(pi, tt.paymentID, 16000))
		})
	}
}

func newTestStripeGateway(t *testing.T, handler http.HandlerFunc, signer *Signer) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
	})
	return newStripeGateway("sk_test_123", &stripe.Backends{API: backend}, signer)
}

func TestStripeGateway_VerifyPayment(t *testing.T) {
	signer := NewSigner("0123456789abcdef")
	in := domain.PaymentVerification{OrderID: "pi_1", PaymentID: "ch_1", Signature: signer.Sign("pi_1", "ch_1")}

	tests := []struct {
		name     string
		in       domain.PaymentVerification
		status   int
		body     string
		want     bool
		wantErr  bool
		noRemote bool
	}{
		{
			name:   "succeeded",
			in:     in,
			status: http.StatusOK,
			body:   `{"id":"pi_1","object":"payment_intent","status":"succeeded","amount":16000,"amount_received":16000,"latest_charge":"ch_1"}`,
			want:   true,
		},
		{
			name:   "not paid yet",
			in:     in,
			status: http.StatusOK,
			body:   `{"id":"pi_1","object":"payment_intent","status":"requires_payment_method","amount":16000,"amount_received":0}`,
		},
		{
			name:   "amount mismatch",
			in:     in,
			status: http.StatusOK,
			body:   `{"id":"pi_1","object":"payment_intent","status":"succeeded","amount":100,"amount_received":100,"latest_charge":"ch_1"}`,
		},
		{
			name:   "unknown intent",
			in:     in,
			status: http.StatusNotFound,
			body:   `{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent"}}`,
		},
		{
			name:    "provider down",
			in:      in,
			status:  http.StatusInternalServerError,
			body:    `{"error":{"type":"api_error","message":"boom"}}`,
			wantErr: true,
		},
		{
			name:     "bad signature",
			in:       domain.PaymentVerification{OrderID: "pi_1", PaymentID: "ch_1", Signature: "forged"},
			noRemote: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/payment_intents/pi_1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, signer)

			ok, err := g.VerifyPayment(context.Background(), tt.in, 16000)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, !tt.noRemote, called)
		})
	}
}
