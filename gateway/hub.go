package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNoPendingSession = errors.New("no pending gateway session for order")
	ErrOrderMismatch    = errors.New("receipt does not belong to order")
)

var _ Launcher = &Hub{}

// Hub is a Launcher for gateways that run in the buyer's browser. Open parks
// the session until the browser relays one of the gateway callbacks for it.
type Hub struct {
	mu      sync.Mutex
	pending map[string]pendingSession
}

type pendingSession struct {
	session  Session
	handlers Handlers
}

func NewHub() *Hub {
	return &Hub{
		pending: map[string]pendingSession{},
	}
}

func (h *Hub) Open(ctx context.Context, session Session, handlers Handlers) error {
	if session.OrderID == "" {
		return fmt.Errorf("gateway session must have an order ID")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.pending[session.OrderID]; ok {
		return fmt.Errorf("gateway session for order %q is already open", session.OrderID)
	}
	h.pending[session.OrderID] = pendingSession{session: session, handlers: handlers}

	return nil
}

// Session returns the parked session for orderID so the client can render it.
func (h *Hub) Session(orderID string) (Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.pending[orderID]
	return p.session, ok
}

// Succeed resolves the parked session for orderID with receipt. The session is
// resolved even when its handler reports that the outcome was not delivered,
// and that error is returned.
func (h *Hub) Succeed(orderID string, receipt Receipt) error {
	if receipt.OrderID != orderID {
		return fmt.Errorf("%w: receipt is for %q, callback is for %q", ErrOrderMismatch, receipt.OrderID, orderID)
	}

	p, err := h.take(orderID)
	if err != nil {
		return err
	}

	if p.handlers.OnSuccess == nil {
		return nil
	}
	return p.handlers.OnSuccess(receipt)
}

func (h *Hub) Dismiss(orderID string) error {
	p, err := h.take(orderID)
	if err != nil {
		return err
	}

	if p.handlers.OnDismiss == nil {
		return nil
	}
	return p.handlers.OnDismiss()
}

func (h *Hub) Fail(orderID string, reason string) error {
	p, err := h.take(orderID)
	if err != nil {
		return err
	}

	if p.handlers.OnPaymentFailed == nil {
		return nil
	}
	return p.handlers.OnPaymentFailed(reason)
}

// Forget drops the parked session for orderID without calling any handler.
func (h *Hub) Forget(orderID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.pending, orderID)
}

func (h *Hub) take(orderID string) (pendingSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.pending[orderID]
	if !ok {
		return pendingSession{}, fmt.Errorf("%w %q", ErrNoPendingSession, orderID)
	}
	delete(h.pending, orderID)

	return p, nil
}
