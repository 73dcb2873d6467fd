package api

import (
	"context"
	"log/slog"
	"sync"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
	"github.com/google/uuid"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ DB = &mockDB{}

type mockDB struct {
	mu        sync.Mutex
	events    map[uuid.UUID]events.Event
	checkouts map[uuid.UUID]checkout.Checkout
}

func newMockDB(evs ...events.Event) *mockDB {
	db := &mockDB{
		events:    make(map[uuid.UUID]events.Event),
		checkouts: make(map[uuid.UUID]checkout.Checkout),
	}
	for _, e := range evs {
		db.events[e.ID] = e
	}
	return db
}

func (m *mockDB) GetEvent(ctx context.Context, id uuid.UUID) (events.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return events.Event{}, events.NewEventDoesNotExistsError("not found", nil)
	}
	return e, nil
}

func (m *mockDB) CreateEvent(ctx context.Context, event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events[event.ID] = event
	return nil
}

func (m *mockDB) CreateCheckout(ctx context.Context, c checkout.Checkout) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.checkouts[c.ID]; ok {
		return checkout.NewCheckoutAlreadyExistsError("exists", nil)
	}
	m.checkouts[c.ID] = c
	return nil
}

func (m *mockDB) UpdateCheckout(ctx context.Context, c checkout.Checkout, expectedVersion int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.checkouts[c.ID]
	if !ok || stored.Version != expectedVersion {
		return checkout.NewVersionConflictError("conflict", nil)
	}
	m.checkouts[c.ID] = c
	return nil
}

func (m *mockDB) GetCheckout(ctx context.Context, id uuid.UUID) (checkout.Checkout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.checkouts[id]
	if !ok {
		return checkout.Checkout{}, checkout.NewCheckoutDoesNotExistError("not found", nil)
	}
	return c, nil
}

var _ SessionBackend = &mockBackend{}

type mockBackend struct {
	token string

	CreateOrderFunc          func(ctx context.Context, req payment.OrderRequest) (payment.Order, error)
	VerifyPaymentFunc        func(ctx context.Context, receipt gateway.Receipt) (payment.VerificationStatus, error)
	FinalizeRegistrationFunc func(ctx context.Context, payload registration.Payload) (registration.Result, error)
}

func (m *mockBackend) CreateOrder(ctx context.Context, req payment.OrderRequest) (payment.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, req)
	}
	return payment.Order{ID: "order_1", Amount: req.Amount, Currency: req.Currency, GatewayKey: "rzp_test"}, nil
}

func (m *mockBackend) VerifyPayment(ctx context.Context, receipt gateway.Receipt) (payment.VerificationStatus, error) {
	if m.VerifyPaymentFunc != nil {
		return m.VerifyPaymentFunc(ctx, receipt)
	}
	return payment.VERIFICATION_SUCCESS, nil
}

func (m *mockBackend) FinalizeRegistration(ctx context.Context, payload registration.Payload) (registration.Result, error) {
	if m.FinalizeRegistrationFunc != nil {
		return m.FinalizeRegistrationFunc(ctx, payload)
	}
	return registration.Result{Status: registration.SUCCESS}, nil
}

type mockNotifier struct {
	mu            sync.Mutex
	confirmations []checkout.Confirmation
}

func (m *mockNotifier) NotifyConfirmed(ctx context.Context, c checkout.Confirmation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.confirmations = append(m.confirmations, c)
	return nil
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.confirmations)
}
