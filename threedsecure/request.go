// Package threedsecure contains the request and response records for the
// 3D Secure verification channel: checking a card's enrollment and
// validating the signature the cardholder's issuer returns.
package threedsecure

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/kevin07696/gateway-sdk/gateway"
	"github.com/kevin07696/gateway-sdk/payment"
	"github.com/kevin07696/gateway-sdk/signing"
)

// Type identifies the verification step carried in the request's type
// attribute.
type Type string

const (
	// VerifyEnrolled asks whether the card is enrolled in 3D Secure.
	VerifyEnrolled Type = "3ds-verifyenrolled"
	// VerifySig validates the PaRes returned by the issuer's ACS.
	VerifySig Type = "3ds-verifysig"
	// VerifyStoredCardEnrolled checks enrollment for a vaulted card.
	VerifyStoredCardEnrolled Type = "realvault-3ds-verifyenrolled"
)

// Request is a 3D Secure verification request. Construct one with
// NewRequest; Timestamp, OrderID and SHA1Hash are generated during send
// when left empty.
type Request struct {
	XMLName   xml.Name `xml:"request"`
	Timestamp string   `xml:"timestamp,attr"`
	Type      Type     `xml:"type,attr"`

	MerchantID    string               `xml:"merchantid"`
	Account       string               `xml:"account,omitempty"`
	OrderID       string               `xml:"orderid,omitempty"`
	Amount        *payment.Amount      `xml:"amount,omitempty"`
	Card          *payment.Card        `xml:"card,omitempty"`
	PaRes         string               `xml:"pares,omitempty"`
	SHA1Hash      string               `xml:"sha1hash,omitempty"`
	Comments      []payment.Comment    `xml:"comments>comment,omitempty"`
	PayerRef      string               `xml:"payerref,omitempty"`
	PaymentMethod string               `xml:"paymentmethod,omitempty"`
	PaymentData   *payment.PaymentData `xml:"paymentdata,omitempty"`
	AutoSettle    *payment.AutoSettle  `xml:"autosettle,omitempty"`
}

// NewRequest returns a request of the given verification step.
func NewRequest(t Type) *Request {
	return &Request{Type: t}
}

// WithMerchantID sets the merchant id.
func (r *Request) WithMerchantID(id string) *Request {
	r.MerchantID = id
	return r
}

// WithAccount sets the sub-account.
func (r *Request) WithAccount(account string) *Request {
	r.Account = account
	return r
}

// WithOrderID sets the order id instead of having one generated.
func (r *Request) WithOrderID(orderID string) *Request {
	r.OrderID = orderID
	return r
}

// WithTimestamp sets the timestamp instead of having one generated.
func (r *Request) WithTimestamp(ts string) *Request {
	r.Timestamp = ts
	return r
}

// WithAmount sets the amount in the smallest unit of the currency.
func (r *Request) WithAmount(value int64, currency string) *Request {
	r.Amount = &payment.Amount{Value: value, Currency: currency}
	return r
}

// WithCard attaches the card details.
func (r *Request) WithCard(card *payment.Card) *Request {
	r.Card = card
	return r
}

// WithPaRes sets the payer authentication response returned by the issuer.
func (r *Request) WithPaRes(pares string) *Request {
	r.PaRes = pares
	return r
}

// WithPayerRef sets the stored payer reference.
func (r *Request) WithPayerRef(ref string) *Request {
	r.PayerRef = ref
	return r
}

// WithPaymentMethod sets the stored payment method reference.
func (r *Request) WithPaymentMethod(method string) *Request {
	r.PaymentMethod = method
	return r
}

// TransactionType returns the wire value of the request's type attribute.
func (r *Request) TransactionType() string {
	return string(r.Type)
}

// GenerateDefaults fills the timestamp and order id when unset, then signs
// the request. Values already present are never overwritten.
func (r *Request) GenerateDefaults(secret string) error {
	if r.Timestamp == "" {
		r.Timestamp = signing.GenerateTimestamp(time.Now())
	}
	if r.OrderID == "" {
		r.OrderID = signing.GenerateOrderID()
	}
	return r.Sign(secret)
}

// Sign computes the request hash from the canonical field order for the
// request's type and attaches it.
func (r *Request) Sign(secret string) error {
	v := signing.Values{
		Timestamp:  r.Timestamp,
		MerchantID: r.MerchantID,
		OrderID:    r.OrderID,
		PayerRef:   r.PayerRef,
	}
	if r.Amount != nil {
		v.Amount = strconv.FormatInt(r.Amount.Value, 10)
		v.Currency = r.Amount.Currency
	}
	if r.Card != nil {
		v.CardNumber = r.Card.Number
	}
	canonical, err := signing.CanonicalRequest(string(r.Type), v)
	if err != nil {
		return fmt.Errorf("sign 3ds request: %w", err)
	}
	r.SHA1Hash = signing.Sign(canonical, secret)
	return nil
}

// MarshalRequest renders the request as an XML document.
func (r *Request) MarshalRequest() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// NewResponse returns the empty response record paired with this request.
func (r *Request) NewResponse() gateway.Response {
	return &Response{}
}
