package registration

import (
	"context"
	"fmt"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/tickets"
	"github.com/Rhymond/go-money"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/International-Combat-Archery-Alliance/ticket-checkout/registration")

type Ticket struct {
	Name      string
	Quantity  int
	UnitPrice *money.Money
}

// Payload is the final record of a purchase. It is tied to a verified payment
// and is built once per verified order.
type Payload struct {
	EventRef         string
	OrderID          string
	PaymentReference string
	Tickets          []Ticket
	Attendee         attendee.Attendee
	TotalAmount      *money.Money
}

func NewPayload(verified payment.VerifiedPayment, eventRef string, selection tickets.Selection, buyer attendee.Attendee) (Payload, error) {
	if verified.IsZero() {
		return Payload{}, NewPaymentNotVerifiedError("Registration payload requires a verified payment")
	}

	var purchased []Ticket
	for _, o := range selection.Selected() {
		purchased = append(purchased, Ticket{
			Name:      o.Name,
			Quantity:  o.Quantity,
			UnitPrice: o.UnitPrice,
		})
	}

	return Payload{
		EventRef:         eventRef,
		OrderID:          verified.OrderID(),
		PaymentReference: verified.PaymentID(),
		Tickets:          purchased,
		Attendee:         buyer,
		TotalAmount:      selection.Totals().Amount,
	}, nil
}

type Status string

const (
	SUCCESS            Status = "SUCCESS"
	ALREADY_REGISTERED Status = "ALREADY_REGISTERED"
)

type Result struct {
	Status  Status
	Message string
}

type Backend interface {
	FinalizeRegistration(ctx context.Context, payload Payload) (Result, error)
}

type Finalizer struct {
	backend Backend
}

func NewFinalizer(backend Backend) *Finalizer {
	return &Finalizer{backend: backend}
}

// Finalize submits the payload. SUCCESS and ALREADY_REGISTERED both mean the
// buyer holds a registration.
func (f *Finalizer) Finalize(ctx context.Context, payload Payload) (Result, error) {
	ctx, span := tracer.Start(ctx, "Finalizer.Finalize")
	defer span.End()
	span.SetAttributes(
		attribute.String("event.ref", payload.EventRef),
		attribute.String("order.id", payload.OrderID),
		attribute.String("payment.id", payload.PaymentReference),
	)

	if payload.PaymentReference == "" {
		err := NewPaymentNotVerifiedError("Registration payload has no payment reference")
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	result, err := f.backend.FinalizeRegistration(ctx, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "finalize failed")
		return Result{}, NewFinalizeFailedError(fmt.Sprintf("Failed to register payment %q for event %q", payload.PaymentReference, payload.EventRef), err)
	}

	switch result.Status {
	case SUCCESS, ALREADY_REGISTERED:
		span.SetAttributes(attribute.String("registration.status", string(result.Status)))
		return result, nil
	default:
		span.SetStatus(codes.Error, "unexpected registration status")
		return Result{}, NewFinalizeFailedError(fmt.Sprintf("Unexpected registration status %q: %s", result.Status, result.Message), nil)
	}
}
