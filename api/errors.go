package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/attendee"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/events"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/tickets"
)

func (a *API) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Error("Failed to marshal response body", slog.String("error", err.Error()))
		status = http.StatusInternalServerError
		jsonBody = []byte(`{"message": "Internal server error", "code": "InternalError"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonBody)
}

func (a *API) writeError(ctx context.Context, w http.ResponseWriter, status int, code ErrorCode, message string) {
	a.writeJSON(ctx, w, status, Error{Message: message, Code: code})
}

// domainError maps an error returned by the domain packages onto a response
// status and body. Server errors are logged and carry the request id.
func (a *API) domainError(ctx context.Context, err error) (int, Error) {
	status, body := errorResponse(err)
	if status >= 500 {
		a.getLoggerOrBaseLogger(ctx).Error("Request failed", slog.String("error", err.Error()))
		if requestId, ok := getRequestIdFromCtx(ctx); ok {
			body.Message = fmt.Sprintf("%s (request %s)", body.Message, requestId)
		}
	}
	return status, body
}

// requestErrorHandler answers requests the generated handlers could not
// decode.
func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.getLoggerOrBaseLogger(r.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	a.writeError(r.Context(), w, http.StatusBadRequest, InputValidationError, err.Error())
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status, body := a.domainError(r.Context(), err)
	a.writeJSON(r.Context(), w, status, body)
}

func errorResponse(err error) (int, Error) {
	var checkoutErr *checkout.Error
	var ticketsErr *tickets.Error
	var attendeeErr *attendee.Error
	var eventErr *events.Error

	switch {
	case errors.As(err, &checkoutErr):
		switch checkoutErr.Reason {
		case checkout.REASON_INVALID_TRANSITION:
			return http.StatusConflict, Error{Code: InvalidTransition, Message: checkoutErr.Message}
		case checkout.REASON_STALE_ORDER:
			return http.StatusConflict, Error{Code: StaleOrder, Message: checkoutErr.Message}
		case checkout.REASON_CHECKOUT_CLOSED:
			return http.StatusConflict, Error{Code: CheckoutClosed, Message: checkoutErr.Message}
		case checkout.REASON_CHECKOUT_BUSY:
			return http.StatusConflict, Error{Code: CheckoutBusy, Message: checkoutErr.Message}
		case checkout.REASON_NO_TICKETS_SELECTED:
			return http.StatusBadRequest, Error{Code: NoTicketsSelected, Message: checkoutErr.Message}
		case checkout.REASON_CHECKOUT_DOES_NOT_EXIST:
			return http.StatusNotFound, Error{Code: NotFound, Message: "Checkout not found"}
		case checkout.REASON_CHECKOUT_ALREADY_EXISTS:
			return http.StatusConflict, Error{Code: AlreadyExists, Message: "Checkout already exists"}
		case checkout.REASON_TIMEOUT:
			return http.StatusServiceUnavailable, Error{Code: Timeout, Message: "Timed out talking to storage"}
		}
	case errors.As(err, &ticketsErr):
		switch ticketsErr.Reason {
		case tickets.REASON_OFFERING_DOES_NOT_EXIST:
			return http.StatusNotFound, Error{Code: NotFound, Message: ticketsErr.Message}
		case tickets.REASON_QUANTITY_TOO_LARGE:
			return http.StatusBadRequest, Error{Code: QuantityTooLarge, Message: ticketsErr.Message}
		}
	case errors.As(err, &attendeeErr):
		return http.StatusBadRequest, Error{Code: InvalidBody, Message: attendeeErr.Message}
	case errors.As(err, &eventErr):
		switch eventErr.Reason {
		case events.REASON_EVENT_DOES_NOT_EXIST:
			return http.StatusNotFound, Error{Code: NotFound, Message: "Event not found"}
		case events.REASON_TIMEOUT:
			return http.StatusServiceUnavailable, Error{Code: Timeout, Message: "Timed out talking to storage"}
		}
	case errors.Is(err, gateway.ErrNoPendingSession):
		return http.StatusNotFound, Error{Code: NotFound, Message: "No gateway session is waiting for this order"}
	case errors.Is(err, gateway.ErrOrderMismatch):
		return http.StatusBadRequest, Error{Code: OrderMismatch, Message: "Receipt does not belong to this order"}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, Error{Code: Timeout, Message: "Request timed out"}
	}

	return http.StatusInternalServerError, Error{Code: InternalError, Message: "Internal server error"}
}
