package events

import (
	"context"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

// DefaultCurrency is used for events that were created without one.
const DefaultCurrency = "INR"

type Event struct {
	ID       uuid.UUID
	Version  int
	Name     string
	IsFree   bool
	Currency string
	// Tickets is the ticket metadata configured by the organizer. It is empty
	// for events imported without any.
	Tickets []TicketOption
}

type TicketOption struct {
	Name  string
	Price *money.Money
}

func (e Event) CurrencyCode() string {
	if e.Currency == "" {
		return DefaultCurrency
	}
	return e.Currency
}

type Repository interface {
	GetEvent(ctx context.Context, id uuid.UUID) (Event, error)
	CreateEvent(ctx context.Context, event Event) error
}
