package threedsecure

import (
	"encoding/xml"

	"github.com/kevin07696/gateway-sdk/gateway"
	"github.com/kevin07696/gateway-sdk/signing"
)

// Response is the gateway's reply to a verification request. For an
// enrolled card the verify-enrolled reply carries the PaReq and the issuer
// URL to redirect the cardholder to; the verify-sig reply carries the
// authentication outcome in the ThreeDSecure block.
type Response struct {
	XMLName   xml.Name `xml:"response"`
	Timestamp string   `xml:"timestamp,attr"`

	MerchantID    string         `xml:"merchantid,omitempty"`
	Account       string         `xml:"account,omitempty"`
	OrderID       string         `xml:"orderid,omitempty"`
	Result        string         `xml:"result,omitempty"`
	AuthCode      string         `xml:"authcode,omitempty"`
	Message       string         `xml:"message,omitempty"`
	PaymentsRef   string         `xml:"pasref,omitempty"`
	TimeTaken     int64          `xml:"timetaken,omitempty"`
	AuthTimeTaken int64          `xml:"authtimetaken,omitempty"`
	PaReq         string         `xml:"pareq,omitempty"`
	URL           string         `xml:"url,omitempty"`
	Enrolled      string         `xml:"enrolled,omitempty"`
	XID           string         `xml:"xid,omitempty"`
	ThreeDSecure  *ThreeDSecure  `xml:"threedsecure,omitempty"`
	SHA1Hash      string         `xml:"sha1hash,omitempty"`
}

// ThreeDSecure is the authentication outcome of a verify-sig check. Status
// "Y" with a CAVV means the cardholder authenticated; the values transfer
// onto the follow-up auth's MPI block.
type ThreeDSecure struct {
	Status    string `xml:"status,omitempty"`
	ECI       string `xml:"eci,omitempty"`
	XID       string `xml:"xid,omitempty"`
	CAVV      string `xml:"cavv,omitempty"`
	Algorithm string `xml:"algorithm,omitempty"`
}

// IsSuccess reports whether the verification step succeeded.
func (r *Response) IsSuccess() bool {
	return r.Result == gateway.ResultSuccess
}

// Signable returns the response fields covered by the response hash.
func (r *Response) Signable() signing.ResponseValues {
	return signing.ResponseValues{
		Timestamp:         r.Timestamp,
		MerchantID:        r.MerchantID,
		OrderID:           r.OrderID,
		Result:            r.Result,
		Message:           r.Message,
		PaymentsReference: r.PaymentsRef,
		AuthCode:          r.AuthCode,
	}
}

// ReceivedHash returns the hash the gateway attached to the response.
func (r *Response) ReceivedHash() string {
	return r.SHA1Hash
}
