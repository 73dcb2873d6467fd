package notify

import "fmt"

type ErrorReason string

const (
	REASON_FAILED_TO_ENCODE  ErrorReason = "FAILED_TO_ENCODE"
	REASON_FAILED_TO_PUBLISH ErrorReason = "FAILED_TO_PUBLISH"
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

func NewFailedToEncodeError(message string, cause error) *Error {
	return &Error{Reason: REASON_FAILED_TO_ENCODE, Message: message, Cause: cause}
}

func NewFailedToPublishError(message string, cause error) *Error {
	return &Error{Reason: REASON_FAILED_TO_PUBLISH, Message: message, Cause: cause}
}
