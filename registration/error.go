package registration

import "fmt"

type ErrorReason string

const (
	REASON_PAYMENT_NOT_VERIFIED ErrorReason = "PAYMENT_NOT_VERIFIED"
	REASON_FINALIZE_FAILED      ErrorReason = "FINALIZE_FAILED"
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

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewPaymentNotVerifiedError(message string) *Error {
	return newRegistrationError(REASON_PAYMENT_NOT_VERIFIED, message, nil)
}

func NewFinalizeFailedError(message string, cause error) *Error {
	return newRegistrationError(REASON_FINALIZE_FAILED, message, cause)
}
