package backend

import "fmt"

type ErrorReason string

const (
	REASON_FAILED_TO_ENCODE_REQUEST ErrorReason = "FAILED_TO_ENCODE_REQUEST"
	REASON_REQUEST_FAILED           ErrorReason = "REQUEST_FAILED"
	REASON_UNEXPECTED_STATUS_CODE   ErrorReason = "UNEXPECTED_STATUS_CODE"
	REASON_INVALID_RESPONSE         ErrorReason = "INVALID_RESPONSE"
)

type Error struct {
	Reason     ErrorReason
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Reason, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewFailedToEncodeRequestError(message string, cause error) *Error {
	return &Error{Reason: REASON_FAILED_TO_ENCODE_REQUEST, Message: message, Cause: cause}
}

func NewRequestFailedError(message string, cause error) *Error {
	return &Error{Reason: REASON_REQUEST_FAILED, Message: message, Cause: cause}
}

func NewUnexpectedStatusCodeError(statusCode int, message string) *Error {
	return &Error{Reason: REASON_UNEXPECTED_STATUS_CODE, Message: message, StatusCode: statusCode}
}

func NewInvalidResponseError(message string, cause error) *Error {
	return &Error{Reason: REASON_INVALID_RESPONSE, Message: message, Cause: cause}
}
