// Package errors defines the typed failures surfaced by the gateway client.
// Every failed send returns exactly one of these; a non-nil error is never
// paired with a usable response.
package errors

import (
	"fmt"
)

// ServerError is returned when the gateway answers with a short-form (basic)
// response, meaning the request could not be processed at all. It carries the
// fields of that response verbatim. The caller may retry with corrected
// input; the client itself never retries.
type ServerError struct {
	Timestamp string
	OrderID   string
	Code      string
	Message   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("gateway rejected request: %s: %s (order %s)", e.Code, e.Message, e.OrderID)
}

// IntegrityError is returned when the recomputed response hash does not match
// the hash the gateway sent. The response cannot be trusted: either the
// shared secret is wrong or the message was tampered with in transit.
type IntegrityError struct {
	Msg string
}

func (e *IntegrityError) Error() string {
	return e.Msg
}

// TransportError is returned for a non-200 HTTP status, a disallowed scheme
// when HTTPS is enforced, or an I/O failure while sending.
type TransportError struct {
	StatusCode int
	Msg        string
	Err        error
}

func (e *TransportError) Error() string {
	msg := e.Msg
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the response body cannot be parsed into the
// expected structure.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode gateway response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned when a response violates the gateway protocol,
// e.g. a missing or non-numeric result code. It is never defaulted over.
type ProtocolError struct {
	Result string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("malformed result code %q in gateway response", e.Result)
}
