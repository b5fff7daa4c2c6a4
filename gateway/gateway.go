// Package gateway implements the client for the remote payments gateway:
// it signs outgoing requests, posts them over HTTPS, verifies the response
// hash and surfaces gateway-reported errors as typed errors.
package gateway

import (
	"github.com/kevin07696/gateway-sdk/signing"
)

// ResultSuccess is the result code of an approved transaction.
const ResultSuccess = "00"

// Request is a signable gateway request. The concrete types live in the
// payment and threedsecure packages.
type Request interface {
	// GenerateDefaults fills any unset generated fields (timestamp, order
	// id) and attaches the request hash computed with the shared secret.
	GenerateDefaults(secret string) error

	// TransactionType returns the wire value of the type attribute.
	TransactionType() string

	// MarshalRequest renders the request as an XML document.
	MarshalRequest() ([]byte, error)

	// NewResponse returns the empty response record the gateway's reply
	// is decoded into.
	NewResponse() Response
}

// Response is a decoded gateway reply that can have its hash verified.
type Response interface {
	// Signable returns the response fields covered by the response hash.
	Signable() signing.ResponseValues

	// ReceivedHash returns the hash attached to the response.
	ReceivedHash() string
}

// Outcome classifies a response result code.
type Outcome int

const (
	// OutcomeSuccess is result "00": the transaction was approved.
	OutcomeSuccess Outcome = iota
	// OutcomeDecline is a gateway decision against the transaction, such
	// as a bank decline. The response is complete and hash-protected.
	OutcomeDecline
	// OutcomeError is a gateway-side processing failure. The response
	// carries only the error detail and no hash.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeDecline:
		return "decline"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// ClassifyResult maps a result code to its outcome. Codes whose first digit
// is three or higher report gateway-side failures; "00" is an approval;
// everything else in between is a business decline. ok is false when the
// result is empty or does not start with a digit.
func ClassifyResult(result string) (outcome Outcome, ok bool) {
	if result == "" || result[0] < '0' || result[0] > '9' {
		return 0, false
	}
	switch {
	case result[0] >= '3':
		return OutcomeError, true
	case result == ResultSuccess:
		return OutcomeSuccess, true
	default:
		return OutcomeDecline, true
	}
}
