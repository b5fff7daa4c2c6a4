// Package payment contains the request and response records for the
// payment channel of the remote gateway: authorizations, settlements,
// voids, rebates, stored-card (vault) maintenance and dynamic currency
// conversion lookups.
package payment

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kevin07696/gateway-sdk/gateway"
	"github.com/kevin07696/gateway-sdk/signing"
)

// Type identifies the transaction type carried in the request's type
// attribute. It selects both the gateway's processing path and the canonical
// field order used for signing.
type Type string

const (
	Auth         Type = "auth"
	AuthMobile   Type = "auth-mobile"
	Settle       Type = "settle"
	Void         Type = "void"
	Rebate       Type = "rebate"
	OTB          Type = "otb"
	Credit       Type = "credit"
	Hold         Type = "hold"
	Release      Type = "release"
	ReceiptIn    Type = "receipt-in"
	PaymentOut   Type = "payment-out"
	ReceiptInOTB Type = "receipt-in-otb"
	PayerNew     Type = "payer-new"
	PayerEdit    Type = "payer-edit"
	CardNew      Type = "card-new"
	CardUpdate   Type = "card-update-card"
	CardCancel   Type = "card-cancel-card"
	DCCRate      Type = "dccrate"
	StoredDCCRate Type = "realvault-dccrate"
)

// Request is a payment-channel request. Construct one with NewRequest, set
// or chain the fields the transaction type needs, and pass it to
// gateway.Client.Send. Timestamp, OrderID and SHA1Hash may be left empty;
// they are generated and attached during send.
//
// A follow-on request (settle, void, rebate, hold, release) must reuse the
// order id, payments reference and auth code returned for the original
// transaction.
type Request struct {
	XMLName   xml.Name `xml:"request"`
	Timestamp string   `xml:"timestamp,attr"`
	Type      Type     `xml:"type,attr"`

	MerchantID    string       `xml:"merchantid"`
	Account       string       `xml:"account,omitempty"`
	Channel       string       `xml:"channel,omitempty"`
	OrderID       string       `xml:"orderid,omitempty"`
	Amount        *Amount      `xml:"amount,omitempty"`
	Card          *Card        `xml:"card,omitempty"`
	AutoSettle    *AutoSettle  `xml:"autosettle,omitempty"`
	SHA1Hash      string       `xml:"sha1hash,omitempty"`
	Comments      []Comment    `xml:"comments>comment,omitempty"`
	PaymentsRef   string       `xml:"pasref,omitempty"`
	AuthCode      string       `xml:"authcode,omitempty"`
	RefundHash    string       `xml:"refundhash,omitempty"`
	FraudFilter   string       `xml:"fraudfilter,omitempty"`
	Recurring     *Recurring   `xml:"recurring,omitempty"`
	TSSInfo       *TSSInfo     `xml:"tssinfo,omitempty"`
	MPI           *MPI         `xml:"mpi,omitempty"`
	Mobile        string       `xml:"mobile,omitempty"`
	Token         string       `xml:"token,omitempty"`
	PayerRef      string       `xml:"payerref,omitempty"`
	PaymentMethod string       `xml:"paymentmethod,omitempty"`
	PaymentData   *PaymentData `xml:"paymentdata,omitempty"`
	Payer         *Payer       `xml:"payer,omitempty"`
	DCCInfo       *DCCInfo     `xml:"dccinfo,omitempty"`
}

// NewRequest returns a request of the given transaction type.
func NewRequest(t Type) *Request {
	return &Request{Type: t}
}

// WithMerchantID sets the merchant id.
func (r *Request) WithMerchantID(id string) *Request {
	r.MerchantID = id
	return r
}

// WithAccount sets the sub-account. When omitted the gateway uses the
// merchant's default account.
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

// WithAmount sets the amount in the smallest unit of the currency,
// e.g. 2000 for 20.00 EUR.
func (r *Request) WithAmount(value int64, currency string) *Request {
	r.Amount = &Amount{Value: value, Currency: currency}
	return r
}

// WithCard attaches the card details.
func (r *Request) WithCard(card *Card) *Request {
	r.Card = card
	return r
}

// WithAutoSettle sets the auto-settle (capture) flag.
func (r *Request) WithAutoSettle(flag AutoSettleFlag) *Request {
	r.AutoSettle = &AutoSettle{Flag: flag}
	return r
}

// WithComment appends a comment. The gateway accepts at most two.
func (r *Request) WithComment(comment string) *Request {
	r.Comments = append(r.Comments, Comment{ID: len(r.Comments) + 1, Value: comment})
	return r
}

// WithPaymentsRef sets the payments reference (pasref) of the original
// transaction.
func (r *Request) WithPaymentsRef(pasref string) *Request {
	r.PaymentsRef = pasref
	return r
}

// WithAuthCode sets the auth code of the original transaction.
func (r *Request) WithAuthCode(code string) *Request {
	r.AuthCode = code
	return r
}

// WithRefundHash sets the SHA-1 hash of the rebate/credit password.
func (r *Request) WithRefundHash(hash string) *Request {
	r.RefundHash = hash
	return r
}

// WithMobile sets the mobile wallet type for auth-mobile, e.g. "apple-pay".
func (r *Request) WithMobile(mobile string) *Request {
	r.Mobile = mobile
	return r
}

// WithToken sets the mobile wallet payment token sent in place of card data.
func (r *Request) WithToken(token string) *Request {
	r.Token = token
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

// WithPayer attaches the payer record for payer-new and payer-edit.
func (r *Request) WithPayer(p *Payer) *Request {
	r.Payer = p
	return r
}

// WithAddressVerification adds Address Verification Service details: the
// digits of the postcode and address line, pipe separated, as a billing
// address in the TSS info block.
func (r *Request) WithAddressVerification(addressLine, postcode string) *Request {
	code := digitsOf(postcode) + "|" + digitsOf(addressLine)
	if r.TSSInfo == nil {
		r.TSSInfo = &TSSInfo{}
	}
	r.TSSInfo.Addresses = append(r.TSSInfo.Addresses, Address{Type: AddressBilling, Code: code})
	return r
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// TransactionType returns the wire value of the request's type attribute.
func (r *Request) TransactionType() string {
	return string(r.Type)
}

// GenerateDefaults fills the timestamp and order id when unset, then signs
// the request. Values already present are never overwritten, so calling it
// again with the same secret leaves the request unchanged.
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
// request's type and attaches it. Signing the same field values with the
// same secret always produces the same hash.
func (r *Request) Sign(secret string) error {
	canonical, err := signing.CanonicalRequest(string(r.Type), r.signable())
	if err != nil {
		return fmt.Errorf("sign payment request: %w", err)
	}
	r.SHA1Hash = signing.Sign(canonical, secret)
	return nil
}

func (r *Request) signable() signing.Values {
	v := signing.Values{
		Timestamp:  r.Timestamp,
		MerchantID: r.MerchantID,
		OrderID:    r.OrderID,
		Token:      r.Token,
		PayerRef:   r.PayerRef,
	}
	if r.Amount != nil {
		v.Amount = strconv.FormatInt(r.Amount.Value, 10)
		v.Currency = r.Amount.Currency
	}
	if r.Card != nil {
		v.CardNumber = r.Card.Number
		v.CardRef = r.Card.Reference
		v.ExpiryDate = r.Card.ExpiryDate
		v.CardHolderName = r.Card.CardHolderName
		// Vault card maintenance nests the payer ref inside the card record.
		if v.PayerRef == "" {
			v.PayerRef = r.Card.PayerReference
		}
	}
	// Payer maintenance carries it on the payer record instead.
	if v.PayerRef == "" && r.Payer != nil {
		v.PayerRef = r.Payer.Ref
	}
	return v
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
