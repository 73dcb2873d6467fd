package payment

import "fmt"

type ErrorReason string

const (
	REASON_ORDER_CREATION_FAILED ErrorReason = "ORDER_CREATION_FAILED"
	REASON_GATEWAY_OPEN_FAILED   ErrorReason = "GATEWAY_OPEN_FAILED"
	REASON_PAYMENT_NOT_VERIFIED  ErrorReason = "PAYMENT_NOT_VERIFIED"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newPaymentError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

// NewOrderCreationError is returned when the backend did not issue an order.
// No gateway session is opened and nothing was charged.
func NewOrderCreationError(message string, cause error) *Error {
	return newPaymentError(REASON_ORDER_CREATION_FAILED, message, cause)
}

func NewGatewayOpenFailedError(message string, cause error) *Error {
	return newPaymentError(REASON_GATEWAY_OPEN_FAILED, message, cause)
}

func NewPaymentNotVerifiedError(message string, cause error) *Error {
	return newPaymentError(REASON_PAYMENT_NOT_VERIFIED, message, cause)
}
