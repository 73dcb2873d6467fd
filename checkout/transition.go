package checkout

import (
	"fmt"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/payment"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/registration"
)

// Transition computes the checkout that results from ev and the commands
// that must run to make progress. It performs no I/O. On error the returned
// checkout is c unchanged and no commands are returned.
func Transition(c Checkout, ev Event) (Checkout, []Command, error) {
	if c.Closed {
		return c, nil, NewCheckoutClosedError()
	}

	if id, ok := orderID(ev); ok {
		if c.ActiveOrder == nil || c.ActiveOrder.ID != id {
			return c, nil, NewStaleOrderError(id)
		}
	}

	if _, ok := ev.(Close); ok {
		return closeCheckout(c)
	}

	next := c
	next.Alert = ""

	switch c.State {
	case SELECTING_TICKETS:
		switch e := ev.(type) {
		case AdjustQuantity:
			selection, err := c.Tickets.Adjust(e.Index, e.Delta)
			if err != nil {
				return c, nil, err
			}
			next.Tickets = selection
			return next, nil, nil
		case Continue:
			if c.Tickets.Totals().Count == 0 {
				return c, nil, NewNoTicketsSelectedError()
			}
			next.State = ENTERING_DETAILS
			return next, nil, nil
		}

	case ENTERING_DETAILS:
		switch e := ev.(type) {
		case SetAttendeeField:
			if err := next.Attendee.SetField(e.Field, e.Value); err != nil {
				return c, nil, err
			}
			return next, nil, nil
		case Continue:
			next.State = REVIEWING
			return next, nil, nil
		case Back:
			next.State = SELECTING_TICKETS
			return next, nil, nil
		}

	case REVIEWING:
		switch ev.(type) {
		case Back:
			next.State = ENTERING_DETAILS
			return next, nil, nil
		case Pay:
			next.State = CREATING_ORDER
			return next, []Command{CreateOrder{Request: payment.OrderRequest{
				Amount:   c.Tickets.Totals().ChargeAmount(),
				Currency: c.Tickets.Currency(),
				EventRef: c.EventRef,
			}}}, nil
		}

	case CREATING_ORDER:
		switch e := ev.(type) {
		case OrderCreated:
			order := e.Order
			next.State = AWAITING_GATEWAY
			next.ActiveOrder = &order
			return next, []Command{OpenGateway{
				Order:       order,
				Buyer:       c.Attendee,
				Description: c.EventName,
			}}, nil
		case OrderCreationFailed:
			next.State = REVIEWING
			next.Alert = AlertPaymentInitFailed
			return next, nil, nil
		}

	case AWAITING_GATEWAY:
		switch e := ev.(type) {
		case GatewaySucceeded:
			next.State = VERIFYING
			return next, []Command{VerifyPayment{OrderID: e.OrderID, Receipt: e.Receipt}}, nil
		case GatewayOpenFailed:
			return backToReview(next, AlertPaymentInitFailed), []Command{AbandonOrder{OrderID: e.OrderID}}, nil
		case GatewayDismissed:
			return backToReview(next, ""), []Command{AbandonOrder{OrderID: e.OrderID}}, nil
		case GatewayPaymentFailed:
			return backToReview(next, AlertPaymentFailed+e.Reason), []Command{AbandonOrder{OrderID: e.OrderID}}, nil
		}

	case VERIFYING:
		switch e := ev.(type) {
		case VerificationSucceeded:
			if c.Finalizing {
				break
			}
			payload, err := registration.NewPayload(e.Payment, c.EventRef, c.Tickets, c.Attendee)
			if err != nil {
				return c, nil, err
			}
			next.Finalizing = true
			next.PaymentReference = payload.PaymentReference
			return next, []Command{FinalizeRegistration{Payload: payload}}, nil
		case VerificationFailed:
			if c.Finalizing {
				break
			}
			next.State = FAILED
			next.Alert = AlertVerificationFailed
			return next, nil, nil
		case Finalized:
			if !c.Finalizing {
				break
			}
			next.State = CONFIRMED
			next.Finalizing = false
			next.Closed = true
			next.Result = e.Result.Status
			next.Alert = AlertRegistered
			if e.Result.Status == registration.ALREADY_REGISTERED {
				next.Alert = AlertAlreadyRegistered
			}
			return next, []Command{NotifyConfirmed{Confirmation: Confirmation{
				CheckoutID:       c.ID,
				EventRef:         c.EventRef,
				Email:            c.Attendee.Email,
				PaymentReference: c.PaymentReference,
				Status:           e.Result.Status,
			}}}, nil
		case FinalizeFailed:
			if !c.Finalizing {
				break
			}
			next.State = FAILED
			next.Finalizing = false
			next.Alert = AlertRegistrationFailed + fmt.Sprintf("payment %s was received but no ticket was issued", c.PaymentReference)
			return next, nil, nil
		}

	case FAILED:
		switch ev.(type) {
		case Restart:
			next.State = REVIEWING
			next.ActiveOrder = nil
			next.PaymentReference = ""
			return next, nil, nil
		}
	}

	return c, nil, NewInvalidTransitionError(c.State, ev)
}

func backToReview(c Checkout, alert string) Checkout {
	c.State = REVIEWING
	c.ActiveOrder = nil
	c.Alert = alert
	return c
}

func closeCheckout(c Checkout) (Checkout, []Command, error) {
	if c.State == VERIFYING {
		return c, nil, NewCheckoutBusyError("Payment is being verified and cannot be abandoned")
	}

	next := c
	next.Closed = true

	if c.State == AWAITING_GATEWAY && c.ActiveOrder != nil {
		return next, []Command{AbandonOrder{OrderID: c.ActiveOrder.ID}}, nil
	}
	return next, nil, nil
}
