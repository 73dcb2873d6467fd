package checkout

import (
	"context"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/tickets"
	"github.com/google/uuid"
)

const (
	AlertPaymentInitFailed  = "Payment initialization failed"
	AlertPaymentFailed      = "Payment Failed: "
	AlertVerificationFailed = "Payment verification failed! Ticket not issued."
	AlertRegistrationFailed = "Registration failed: "
	AlertRegistered         = "Registration successful!"
	AlertAlreadyRegistered  = "You are already registered for this event."
)

// Checkout is one buyer's purchase of tickets for one event.
type Checkout struct {
	ID        uuid.UUID
	Version   int
	EventRef  string
	EventName string
	State     State
	Tickets   tickets.Selection
	Attendee  attendee.Attendee

	// ActiveOrder is the order currently awaiting a gateway outcome or being
	// verified. Any other order is stale.
	ActiveOrder *payment.Order

	// Finalizing is set once the active order's payment is verified and the
	// registration has been submitted.
	Finalizing bool

	PaymentReference string
	Result           registration.Status
	Alert            string
	Closed           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(id uuid.UUID, event events.Event, now time.Time) Checkout {
	return Checkout{
		ID:        id,
		Version:   1,
		EventRef:  event.ID.String(),
		EventName: event.Name,
		State:     SELECTING_TICKETS,
		Tickets:   tickets.NewSelection(event),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// InProgress reports whether the checkout is waiting on the backend or the
// gateway.
func (c Checkout) InProgress() bool {
	switch c.State {
	case CREATING_ORDER, AWAITING_GATEWAY, VERIFYING:
		return true
	default:
		return false
	}
}

func (c Checkout) Totals() tickets.Totals {
	return c.Tickets.Totals()
}

// Confirmation is published once a checkout reaches CONFIRMED.
type Confirmation struct {
	CheckoutID       uuid.UUID
	EventRef         string
	Email            string
	PaymentReference string
	Status           registration.Status
}

type Repository interface {
	CreateCheckout(ctx context.Context, c Checkout) error
	// UpdateCheckout stores c if the stored copy is still at expectedVersion.
	UpdateCheckout(ctx context.Context, c Checkout, expectedVersion int) error
	GetCheckout(ctx context.Context, id uuid.UUID) (Checkout, error)
}
