package checkout

import (
	"context"
	"sync"
	"testing"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testEventID = uuid.MustParse("6f1c2b84-5d0e-4a57-9d53-1f0a3b6c7e21")

func paidEvent() events.Event {
	return events.Event{ID: testEventID, Name: "Spring Open", Currency: "INR"}
}

func freeEvent() events.Event {
	return events.Event{ID: testEventID, Name: "Community Shoot", IsFree: true, Currency: "INR"}
}

var testBuyer = attendee.Attendee{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "9876543210"}

type mockVerificationBackend struct {
	VerifyPaymentFunc func(ctx context.Context, receipt gateway.Receipt) (payment.VerificationStatus, error)
}

func (m *mockVerificationBackend) VerifyPayment(ctx context.Context, receipt gateway.Receipt) (payment.VerificationStatus, error) {
	if m.VerifyPaymentFunc == nil {
		return payment.VERIFICATION_SUCCESS, nil
	}
	return m.VerifyPaymentFunc(ctx, receipt)
}

func verifiedPayment(t *testing.T, orderID string, paymentID string) payment.VerifiedPayment {
	t.Helper()

	verified, err := payment.NewVerifier(&mockVerificationBackend{}).Verify(context.Background(), gateway.Receipt{
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: "sig_" + paymentID,
	})
	require.NoError(t, err)

	return verified
}

type mockOrderService struct {
	RequestOrderFunc       func(ctx context.Context, req payment.OrderRequest) (payment.Order, error)
	OpenGatewaySessionFunc func(ctx context.Context, order payment.Order, buyer attendee.Attendee, description string, handlers gateway.Handlers) error
}

func (m *mockOrderService) RequestOrder(ctx context.Context, req payment.OrderRequest) (payment.Order, error) {
	return m.RequestOrderFunc(ctx, req)
}

func (m *mockOrderService) OpenGatewaySession(ctx context.Context, order payment.Order, buyer attendee.Attendee, description string, handlers gateway.Handlers) error {
	return m.OpenGatewaySessionFunc(ctx, order, buyer, description, handlers)
}

type mockFinalizer struct {
	FinalizeFunc func(ctx context.Context, payload registration.Payload) (registration.Result, error)
}

func (m *mockFinalizer) Finalize(ctx context.Context, payload registration.Payload) (registration.Result, error) {
	return m.FinalizeFunc(ctx, payload)
}

type mockNotifier struct {
	mu            sync.Mutex
	confirmations []Confirmation
}

func (m *mockNotifier) NotifyConfirmed(ctx context.Context, confirmation Confirmation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.confirmations = append(m.confirmations, confirmation)
	return nil
}

func (m *mockNotifier) Confirmations() []Confirmation {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Confirmation(nil), m.confirmations...)
}

type mockRepository struct {
	mu        sync.Mutex
	checkouts map[uuid.UUID]Checkout

	CreateCheckoutFunc func(ctx context.Context, c Checkout) error
	UpdateCheckoutFunc func(ctx context.Context, c Checkout, expectedVersion int) error
}

func newMockRepository() *mockRepository {
	return &mockRepository{checkouts: make(map[uuid.UUID]Checkout)}
}

func (m *mockRepository) CreateCheckout(ctx context.Context, c Checkout) error {
	if m.CreateCheckoutFunc != nil {
		return m.CreateCheckoutFunc(ctx, c)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.checkouts[c.ID]; ok {
		return NewCheckoutAlreadyExistsError("exists", nil)
	}
	m.checkouts[c.ID] = c
	return nil
}

func (m *mockRepository) UpdateCheckout(ctx context.Context, c Checkout, expectedVersion int) error {
	if m.UpdateCheckoutFunc != nil {
		return m.UpdateCheckoutFunc(ctx, c, expectedVersion)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.checkouts[c.ID]
	if !ok {
		return NewCheckoutDoesNotExistError("missing", nil)
	}
	if stored.Version != expectedVersion {
		return NewVersionConflictError("conflict", nil)
	}
	m.checkouts[c.ID] = c
	return nil
}

func (m *mockRepository) GetCheckout(ctx context.Context, id uuid.UUID) (Checkout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.checkouts[id]
	if !ok {
		return Checkout{}, NewCheckoutDoesNotExistError("missing", nil)
	}
	return c, nil
}
