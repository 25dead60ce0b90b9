package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeValidation      = "validation_error"
	ErrCodeConflict        = "conflict"
	ErrCodeContentRejected = "content_rejected"
	ErrCodeProtocol        = "protocol_error"
)

// ErrNoAck marks handler outcomes that must not produce an acknowledgment.
// The upstream chat server never acknowledged a message sent by a connection
// with no directory record; transports check for this sentinel and stay
// silent instead of sending an ack frame.
var ErrNoAck = errors.New("no acknowledgment")

// Error wraps a code and human-readable message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func validationError(msg string) *Error {
	return &Error{Code: ErrCodeValidation, Message: msg}
}

func conflictError(msg string) *Error {
	return &Error{Code: ErrCodeConflict, Message: msg}
}

func contentRejected(msg string) *Error {
	return &Error{Code: ErrCodeContentRejected, Message: msg}
}

func protocolError(msg string) *Error {
	return &Error{Code: ErrCodeProtocol, Message: msg}
}
