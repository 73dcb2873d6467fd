package checkout

import (
	"fmt"
	"strings"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
)

// Event is an input to Transition: either something the buyer did or the
// outcome of a Command.
type Event interface {
	isEvent()
}

type AdjustQuantity struct {
	Index int
	Delta int
}

type SetAttendeeField struct {
	Field attendee.Field
	Value string
}

type Continue struct{}

type Back struct{}

type Pay struct{}

type Restart struct{}

type Close struct{}

type OrderCreated struct {
	Order payment.Order
}

type OrderCreationFailed struct {
	Err error
}

type GatewayOpenFailed struct {
	OrderID string
	Err     error
}

type GatewaySucceeded struct {
	OrderID string
	Receipt gateway.Receipt
}

type GatewayDismissed struct {
	OrderID string
}

type GatewayPaymentFailed struct {
	OrderID string
	Reason  string
}

type VerificationSucceeded struct {
	OrderID string
	Payment payment.VerifiedPayment
}

type VerificationFailed struct {
	OrderID string
	Err     error
}

type Finalized struct {
	OrderID string
	Result  registration.Result
}

type FinalizeFailed struct {
	OrderID string
	Err     error
}

func (AdjustQuantity) isEvent()        {}
func (SetAttendeeField) isEvent()      {}
func (Continue) isEvent()              {}
func (Back) isEvent()                  {}
func (Pay) isEvent()                   {}
func (Restart) isEvent()               {}
func (Close) isEvent()                 {}
func (OrderCreated) isEvent()          {}
func (OrderCreationFailed) isEvent()   {}
func (GatewayOpenFailed) isEvent()     {}
func (GatewaySucceeded) isEvent()      {}
func (GatewayDismissed) isEvent()      {}
func (GatewayPaymentFailed) isEvent()  {}
func (VerificationSucceeded) isEvent() {}
func (VerificationFailed) isEvent()    {}
func (Finalized) isEvent()             {}
func (FinalizeFailed) isEvent()        {}

// orderID returns the order an event is about, if it is about one.
func orderID(ev Event) (string, bool) {
	switch e := ev.(type) {
	case GatewayOpenFailed:
		return e.OrderID, true
	case GatewaySucceeded:
		return e.OrderID, true
	case GatewayDismissed:
		return e.OrderID, true
	case GatewayPaymentFailed:
		return e.OrderID, true
	case VerificationSucceeded:
		return e.OrderID, true
	case VerificationFailed:
		return e.OrderID, true
	case Finalized:
		return e.OrderID, true
	case FinalizeFailed:
		return e.OrderID, true
	default:
		return "", false
	}
}

func eventName(ev Event) string {
	name := fmt.Sprintf("%T", ev)
	return name[strings.LastIndex(name, ".")+1:]
}

// Command is a side effect requested by Transition. The orchestrator runs
// it and feeds the outcome back as an Event.
type Command interface {
	isCommand()
}

type CreateOrder struct {
	Request payment.OrderRequest
}

type OpenGateway struct {
	Order       payment.Order
	Buyer       attendee.Attendee
	Description string
}

// AbandonOrder drops an order without telling the backend.
type AbandonOrder struct {
	OrderID string
}

type VerifyPayment struct {
	OrderID string
	Receipt gateway.Receipt
}

type FinalizeRegistration struct {
	Payload registration.Payload
}

type NotifyConfirmed struct {
	Confirmation Confirmation
}

func (CreateOrder) isCommand()          {}
func (OpenGateway) isCommand()          {}
func (AbandonOrder) isCommand()         {}
func (VerifyPayment) isCommand()        {}
func (FinalizeRegistration) isCommand() {}
func (NotifyConfirmed) isCommand()      {}
