package tickets

import "fmt"

type ErrorReason string

const (
	REASON_OFFERING_DOES_NOT_EXIST ErrorReason = "OFFERING_DOES_NOT_EXIST"
	REASON_QUANTITY_TOO_LARGE      ErrorReason = "QUANTITY_TOO_LARGE"
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

func newTicketsError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewOfferingDoesNotExistError(index int, numOfferings int) *Error {
	return newTicketsError(REASON_OFFERING_DOES_NOT_EXIST, fmt.Sprintf("No offering at index %d, there are %d offerings", index, numOfferings), nil)
}

func NewQuantityTooLargeError(offering string) *Error {
	return newTicketsError(REASON_QUANTITY_TOO_LARGE, fmt.Sprintf("Quantity of %q is too large to total", offering), nil)
}
