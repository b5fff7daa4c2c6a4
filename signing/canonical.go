package signing

import (
	"fmt"
	"strings"
)

// Values holds every field that can participate in a request's canonical
// form. Absent fields are left as the empty string.
type Values struct {
	Timestamp      string
	MerchantID     string
	OrderID        string
	Amount         string
	Currency       string
	CardNumber     string
	Token          string
	PayerRef       string
	CardRef        string
	ExpiryDate     string
	CardHolderName string
}

// ResponseValues holds the fields of a response's canonical form, which is
// the same for every transaction type.
type ResponseValues struct {
	Timestamp         string
	MerchantID        string
	OrderID           string
	Result            string
	Message           string
	PaymentsReference string
	AuthCode          string
}

type field int

const (
	timestamp field = iota
	merchantID
	orderID
	amount
	currency
	cardNumber
	token
	payerRef
	cardRef
	expiryDate
	cardHolderName
	blank
)

// requestFields is the authoritative canonicalization table. Each row lists,
// in order, the fields joined with "." to form the string that gets signed
// for that transaction type. There is no fallback row: a type absent from
// this table cannot be signed, because field order is not inferable from
// similar types and a wrong guess produces a signature the gateway rejects.
//
// Every row has been checked against the gateway's published hash examples.
var requestFields = map[string][]field{
	"auth":               {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"settle":             {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"void":               {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"rebate":             {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"credit":             {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"hold":               {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"release":            {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"dccrate":            {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"realvault-dccrate":  {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"auth-mobile":        {timestamp, merchantID, orderID, blank, blank, token},
	"otb":                {timestamp, merchantID, orderID, cardNumber},
	"receipt-in":         {timestamp, merchantID, orderID, amount, currency, payerRef},
	"payment-out":        {timestamp, merchantID, orderID, amount, currency, payerRef},
	"receipt-in-otb":     {timestamp, merchantID, orderID, payerRef},
	"payer-new":          {timestamp, merchantID, orderID, amount, currency, payerRef},
	"payer-edit":         {timestamp, merchantID, orderID, amount, currency, payerRef},
	"card-new":           {timestamp, merchantID, orderID, amount, currency, payerRef, cardHolderName, cardNumber},
	"card-update-card":   {timestamp, merchantID, payerRef, cardRef, expiryDate, cardNumber},
	"card-cancel-card":   {timestamp, merchantID, payerRef, cardRef},
	"3ds-verifyenrolled": {timestamp, merchantID, orderID, amount, currency, cardNumber},
	"3ds-verifysig":      {timestamp, merchantID, orderID, amount, currency, cardNumber},

	"realvault-3ds-verifyenrolled": {timestamp, merchantID, orderID, amount, currency, payerRef},
}

// CanonicalRequest builds the period-joined canonical string for a request
// of the given transaction type. It returns an error for a type with no
// table entry.
func CanonicalRequest(transactionType string, v Values) (string, error) {
	fields, ok := requestFields[transactionType]
	if !ok {
		return "", fmt.Errorf("no canonical field order defined for transaction type %q", transactionType)
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case timestamp:
			parts[i] = v.Timestamp
		case merchantID:
			parts[i] = v.MerchantID
		case orderID:
			parts[i] = v.OrderID
		case amount:
			parts[i] = v.Amount
		case currency:
			parts[i] = v.Currency
		case cardNumber:
			parts[i] = v.CardNumber
		case token:
			parts[i] = v.Token
		case payerRef:
			parts[i] = v.PayerRef
		case cardRef:
			parts[i] = v.CardRef
		case expiryDate:
			parts[i] = v.ExpiryDate
		case cardHolderName:
			parts[i] = v.CardHolderName
		case blank:
			parts[i] = ""
		}
	}
	return strings.Join(parts, "."), nil
}

// CanonicalResponse builds the canonical string verified against a
// response's sha1hash. The field order is fixed for all transaction types.
func CanonicalResponse(v ResponseValues) string {
	return strings.Join([]string{
		v.Timestamp,
		v.MerchantID,
		v.OrderID,
		v.Result,
		v.Message,
		v.PaymentsReference,
		v.AuthCode,
	}, ".")
}
