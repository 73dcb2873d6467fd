package attendee

import "fmt"

type ErrorReason string

const (
	REASON_UNKNOWN_FIELD ErrorReason = "UNKNOWN_FIELD"
)

type Error struct {
	Reason  ErrorReason
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func NewUnknownFieldError(field Field) *Error {
	return &Error{
		Reason:  REASON_UNKNOWN_FIELD,
		Message: fmt.Sprintf("Unknown attendee field %q", field),
	}
}
