package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
)

// GetGatewayOrder returns what the browser hands to the hosted gateway script.
func (a *API) GetGatewayOrder(ctx context.Context, request GetGatewayOrderRequestObject) (GetGatewayOrderResponseObject, error) {
	session, ok := a.hub.Session(request.OrderId)
	if !ok {
		status, body := a.domainError(ctx, gateway.ErrNoPendingSession)
		return GetGatewayOrderdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return GetGatewayOrder200JSONResponse{
		Key:         session.Key,
		Amount:      session.Amount,
		Currency:    session.Currency,
		OrderId:     session.OrderID,
		Name:        session.Name,
		Description: session.Description,
		Prefill: GatewayPrefill{
			Name:    session.Prefill.Name,
			Email:   session.Prefill.Email,
			Contact: session.Prefill.Phone,
		},
	}, nil
}

func (a *API) PostGatewayOrderSuccess(ctx context.Context, request PostGatewayOrderSuccessRequestObject) (PostGatewayOrderSuccessResponseObject, error) {
	if request.Body == nil {
		return PostGatewayOrderSuccessdefaultJSONResponse{
			StatusCode: http.StatusBadRequest,
			Body:       Error{Code: EmptyBody, Message: "Must specify a body"},
		}, nil
	}

	err := a.hub.Succeed(request.OrderId, gateway.Receipt{
		OrderID:   request.Body.GatewayOrderId,
		PaymentID: request.Body.GatewayPaymentId,
		Signature: request.Body.GatewaySignature,
	})
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Warn("Rejected gateway success callback", slog.String("order-id", request.OrderId), slog.String("error", err.Error()))

		status, body := a.domainError(ctx, err)
		return PostGatewayOrderSuccessdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PostGatewayOrderSuccess202Response{}, nil
}

func (a *API) PostGatewayOrderDismiss(ctx context.Context, request PostGatewayOrderDismissRequestObject) (PostGatewayOrderDismissResponseObject, error) {
	if err := a.hub.Dismiss(request.OrderId); err != nil {
		status, body := a.domainError(ctx, err)
		return PostGatewayOrderDismissdefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PostGatewayOrderDismiss202Response{}, nil
}

func (a *API) PostGatewayOrderFailure(ctx context.Context, request PostGatewayOrderFailureRequestObject) (PostGatewayOrderFailureResponseObject, error) {
	if request.Body == nil {
		return PostGatewayOrderFailuredefaultJSONResponse{
			StatusCode: http.StatusBadRequest,
			Body:       Error{Code: EmptyBody, Message: "Must specify a body"},
		}, nil
	}

	if err := a.hub.Fail(request.OrderId, request.Body.Reason); err != nil {
		status, body := a.domainError(ctx, err)
		return PostGatewayOrderFailuredefaultJSONResponse{StatusCode: status, Body: body}, nil
	}

	return PostGatewayOrderFailure202Response{}, nil
}
