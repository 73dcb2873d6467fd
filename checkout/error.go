package checkout

import "fmt"

type ErrorReason string

const (
	REASON_INVALID_TRANSITION              ErrorReason = "INVALID_TRANSITION"
	REASON_STALE_ORDER                     ErrorReason = "STALE_ORDER"
	REASON_CHECKOUT_CLOSED                 ErrorReason = "CHECKOUT_CLOSED"
	REASON_CHECKOUT_BUSY                   ErrorReason = "CHECKOUT_BUSY"
	REASON_NO_TICKETS_SELECTED             ErrorReason = "NO_TICKETS_SELECTED"
	REASON_CHECKOUT_DOES_NOT_EXIST         ErrorReason = "CHECKOUT_DOES_NOT_EXIST"
	REASON_CHECKOUT_ALREADY_EXISTS         ErrorReason = "CHECKOUT_ALREADY_EXISTS"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_VERSION_CONFLICT                ErrorReason = "VERSION_CONFLICT"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newCheckoutError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidTransitionError(state State, event Event) *Error {
	return newCheckoutError(REASON_INVALID_TRANSITION, fmt.Sprintf("%s is not allowed in state %s", eventName(event), state), nil)
}

func NewStaleOrderError(orderID string) *Error {
	return newCheckoutError(REASON_STALE_ORDER, fmt.Sprintf("Order %q is not the active order", orderID), nil)
}

func NewCheckoutClosedError() *Error {
	return newCheckoutError(REASON_CHECKOUT_CLOSED, "Checkout is closed", nil)
}

func NewCheckoutBusyError(message string) *Error {
	return newCheckoutError(REASON_CHECKOUT_BUSY, message, nil)
}

func NewNoTicketsSelectedError() *Error {
	return newCheckoutError(REASON_NO_TICKETS_SELECTED, "Select at least one ticket to continue", nil)
}

func NewCheckoutDoesNotExistError(message string, cause error) *Error {
	return newCheckoutError(REASON_CHECKOUT_DOES_NOT_EXIST, message, cause)
}

func NewCheckoutAlreadyExistsError(message string, cause error) *Error {
	return newCheckoutError(REASON_CHECKOUT_ALREADY_EXISTS, message, cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newCheckoutError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newCheckoutError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newCheckoutError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewVersionConflictError(message string, cause error) *Error {
	return newCheckoutError(REASON_VERSION_CONFLICT, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newCheckoutError(REASON_TIMEOUT, message, nil)
}
