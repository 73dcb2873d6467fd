package gateway

import "context"

// Session is everything the hosted gateway needs to collect a payment for one
// order.
type Session struct {
	Key         string
	Amount      int64
	Currency    string
	OrderID     string
	Name        string
	Description string
	Prefill     Prefill
}

type Prefill struct {
	Name  string
	Email string
	Phone string
}

// Receipt is the gateway's proof of payment. It is opaque here and only
// meaningful to the backend that verifies it.
type Receipt struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Handlers receive the outcome of a gateway session. Exactly one of them is
// called per opened session. A handler returns an error when whoever opened the
// session is no longer there to receive the outcome.
type Handlers struct {
	OnSuccess       func(receipt Receipt) error
	OnDismiss       func() error
	OnPaymentFailed func(reason string) error
}

type Launcher interface {
	Open(ctx context.Context, session Session, handlers Handlers) error
}
