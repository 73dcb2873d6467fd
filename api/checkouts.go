package api

import (
	"context"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/tickets"
	"github.com/google/uuid"
)

func (a *API) PostEventCheckouts(ctx context.Context, request PostEventCheckoutsRequestObject) (PostEventCheckoutsResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	token, ok := getBearerTokenFromCtx(ctx)
	if !ok {
		return PostEventCheckoutsdefaultJSONResponse{
			StatusCode: http.StatusUnauthorized,
			Body: Error{
				Code:    AuthError,
				Message: "A bearer token is required to start a checkout",
			},
		}, nil
	}

	event, err := a.db.GetEvent(ctx, request.EventId)
	if err != nil {
		logger.Warn("Failed to get event for checkout", "error", err)

		status, body := a.domainError(ctx, err)
		return PostEventCheckoutsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	c := checkout.New(a.newID(), event, a.now())
	o, err := a.registry.Start(ctx, c, a.servicesFor(token))
	if err != nil {
		logger.Error("Failed to start checkout", "error", err)

		status, body := a.domainError(ctx, err)
		return PostEventCheckoutsdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	logger.Info("Started checkout", "checkout-id", c.ID, "event-id", event.ID)

	return PostEventCheckouts201JSONResponse(checkoutToApiCheckout(o.Snapshot())), nil
}

func (a *API) GetCheckout(ctx context.Context, request GetCheckoutRequestObject) (GetCheckoutResponseObject, error) {
	if o, running := a.registry.Get(request.CheckoutId); running {
		return GetCheckout200JSONResponse{CheckoutJSONResponse(checkoutToApiCheckout(o.Snapshot()))}, nil
	}

	c, err := a.db.GetCheckout(ctx, request.CheckoutId)
	if err != nil {
		status, body := a.domainError(ctx, err)
		return GetCheckoutdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return GetCheckout200JSONResponse{CheckoutJSONResponse(checkoutToApiCheckout(c))}, nil
}

func (a *API) DeleteCheckout(ctx context.Context, request DeleteCheckoutRequestObject) (DeleteCheckoutResponseObject, error) {
	c, err := a.send(ctx, request.CheckoutId, checkout.Close{})
	if err != nil {
		status, body := a.domainError(ctx, err)
		return DeleteCheckoutdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return DeleteCheckout200JSONResponse{CheckoutJSONResponse(c)}, nil
}

func (a *API) PostCheckoutTicketQuantity(ctx context.Context, request PostCheckoutTicketQuantityRequestObject) (PostCheckoutTicketQuantityResponseObject, error) {
	if request.Body == nil {
		return PostCheckoutTicketQuantitydefaultJSONResponse{
			StatusCode: http.StatusBadRequest,
			Body:       Error{Code: EmptyBody, Message: "Must specify a body"},
		}, nil
	}
	if request.Index < 0 {
		return PostCheckoutTicketQuantitydefaultJSONResponse{
			StatusCode: http.StatusBadRequest,
			Body:       Error{Code: InputValidationError, Message: "index must be a non-negative integer"},
		}, nil
	}

	c, err := a.send(ctx, request.CheckoutId, checkout.AdjustQuantity{Index: request.Index, Delta: request.Body.Delta})
	if err != nil {
		status, body := a.domainError(ctx, err)
		return PostCheckoutTicketQuantitydefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PostCheckoutTicketQuantity200JSONResponse{CheckoutJSONResponse(c)}, nil
}

func (a *API) PutCheckoutAttendee(ctx context.Context, request PutCheckoutAttendeeRequestObject) (PutCheckoutAttendeeResponseObject, error) {
	if request.Body == nil {
		return PutCheckoutAttendeedefaultJSONResponse{
			StatusCode: http.StatusBadRequest,
			Body:       Error{Code: EmptyBody, Message: "Must specify a body"},
		}, nil
	}

	c, err := a.send(ctx, request.CheckoutId, checkout.SetAttendeeField{
		Field: attendee.Field(request.Body.Field),
		Value: request.Body.Value,
	})
	if err != nil {
		status, body := a.domainError(ctx, err)
		return PutCheckoutAttendeedefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PutCheckoutAttendee200JSONResponse{CheckoutJSONResponse(c)}, nil
}

func (a *API) PostCheckoutContinue(ctx context.Context, request PostCheckoutContinueRequestObject) (PostCheckoutContinueResponseObject, error) {
	c, err := a.send(ctx, request.CheckoutId, checkout.Continue{})
	if err != nil {
		status, body := a.domainError(ctx, err)
		return PostCheckoutContinuedefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PostCheckoutContinue200JSONResponse{CheckoutJSONResponse(c)}, nil
}

func (a *API) PostCheckoutBack(ctx context.Context, request PostCheckoutBackRequestObject) (PostCheckoutBackResponseObject, error) {
	c, err := a.send(ctx, request.CheckoutId, checkout.Back{})
	if err != nil {
		status, body := a.domainError(ctx, err)
		return PostCheckoutBackdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PostCheckoutBack200JSONResponse{CheckoutJSONResponse(c)}, nil
}

func (a *API) PostCheckoutPay(ctx context.Context, request PostCheckoutPayRequestObject) (PostCheckoutPayResponseObject, error) {
	c, err := a.send(ctx, request.CheckoutId, checkout.Pay{})
	if err != nil {
		status, body := a.domainError(ctx, err)
		return PostCheckoutPaydefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PostCheckoutPay200JSONResponse{CheckoutJSONResponse(c)}, nil
}

func (a *API) PostCheckoutRestart(ctx context.Context, request PostCheckoutRestartRequestObject) (PostCheckoutRestartResponseObject, error) {
	c, err := a.send(ctx, request.CheckoutId, checkout.Restart{})
	if err != nil {
		status, body := a.domainError(ctx, err)
		return PostCheckoutRestartdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PostCheckoutRestart200JSONResponse{CheckoutJSONResponse(c)}, nil
}

// send delivers ev to the running checkout id and returns the resulting
// checkout.
func (a *API) send(ctx context.Context, id uuid.UUID, ev checkout.Event) (Checkout, error) {
	o, running := a.registry.Get(id)
	if !running {
		return Checkout{}, a.notRunningError(ctx, id)
	}

	c, err := o.Send(ctx, ev)
	if err != nil {
		return Checkout{}, err
	}

	return checkoutToApiCheckout(c), nil
}

// notRunningError explains why no orchestrator is running for id: either it
// never existed or it has already finished.
func (a *API) notRunningError(ctx context.Context, id uuid.UUID) error {
	_, err := a.db.GetCheckout(ctx, id)
	if err != nil {
		return err
	}
	return checkout.NewCheckoutClosedError()
}

func checkoutToApiCheckout(c checkout.Checkout) Checkout {
	offerings := c.Tickets.Offerings()
	apiTickets := make([]Ticket, 0, len(offerings))
	for i, o := range offerings {
		apiTickets = append(apiTickets, Ticket{
			Index:     i,
			Name:      o.Name,
			UnitPrice: tickets.MajorUnits(o.UnitPrice),
			Quantity:  o.Quantity,
			Subtotal:  tickets.MajorUnits(o.Subtotal()),
		})
	}

	totals := c.Totals()
	apiCheckout := Checkout{
		Id:         c.ID,
		Version:    c.Version,
		EventRef:   c.EventRef,
		EventName:  c.EventName,
		State:      CheckoutState(c.State.String()),
		InProgress: c.InProgress(),
		Closed:     c.Closed,
		Alert:      c.Alert,
		Currency:   c.Tickets.Currency(),
		Tickets:    apiTickets,
		Totals: Totals{
			Count:        totals.Count,
			Amount:       totals.MajorUnits(),
			ChargeAmount: totals.ChargeAmount(),
			Display:      totals.Display(),
		},
		Attendee: Attendee{
			FirstName: c.Attendee.FirstName,
			LastName:  c.Attendee.LastName,
			Email:     c.Attendee.Email,
			Phone:     c.Attendee.Phone,
		},
		PaymentReference: c.PaymentReference,
		Result:           string(c.Result),
	}
	if c.ActiveOrder != nil {
		apiCheckout.Order = &Order{
			OrderId:  c.ActiveOrder.ID,
			Amount:   c.ActiveOrder.Amount,
			Currency: c.ActiveOrder.Currency,
		}
	}

	return apiCheckout
}
