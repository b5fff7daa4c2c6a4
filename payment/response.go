package payment

import (
	"encoding/xml"

	"github.com/kevin07696/gateway-sdk/gateway"
	"github.com/kevin07696/gateway-sdk/signing"
)

// Response is the gateway's reply to a payment-channel request. Result "00"
// is an approval; any other value carries the decline or error detail in
// Result and Message.
type Response struct {
	XMLName   xml.Name `xml:"response"`
	Timestamp string   `xml:"timestamp,attr"`

	MerchantID        string         `xml:"merchantid,omitempty"`
	Account           string         `xml:"account,omitempty"`
	OrderID           string         `xml:"orderid,omitempty"`
	Result            string         `xml:"result,omitempty"`
	AuthCode          string         `xml:"authcode,omitempty"`
	Message           string         `xml:"message,omitempty"`
	PaymentsRef       string         `xml:"pasref,omitempty"`
	CVNResult         string         `xml:"cvnresult,omitempty"`
	TimeTaken         int64          `xml:"timetaken,omitempty"`
	AuthTimeTaken     int64          `xml:"authtimetaken,omitempty"`
	AcquirerResponse  string         `xml:"acquirerresponse,omitempty"`
	BatchID           int64          `xml:"batchid,omitempty"`
	CardIssuer        *CardIssuer    `xml:"cardissuer,omitempty"`
	SHA1Hash          string         `xml:"sha1hash,omitempty"`
	TSSResult         *TSSResult     `xml:"tss,omitempty"`
	AVSPostcodeResult string         `xml:"avspostcoderesponse,omitempty"`
	AVSAddressResult  string         `xml:"avsaddressresponse,omitempty"`
	DCCInfo           *DCCInfoResult `xml:"dccinfo,omitempty"`
	FraudFilter       string         `xml:"fraudfilter,omitempty"`
}

// CardIssuer describes the issuing bank of the card used.
type CardIssuer struct {
	Bank        string `xml:"bank,omitempty"`
	Country     string `xml:"country,omitempty"`
	CountryCode string `xml:"countrycode,omitempty"`
	Region      string `xml:"region,omitempty"`
}

// TSSResult is the transaction suitability service score: an overall result
// and the individual checks that produced it.
type TSSResult struct {
	Result string           `xml:"result,omitempty"`
	Checks []TSSResultCheck `xml:"check,omitempty"`
}

// TSSResultCheck is a single suitability check and its score.
type TSSResultCheck struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

// DCCInfoResult is the currency conversion offer returned for a dccrate
// lookup.
type DCCInfoResult struct {
	CardHolderCurrency      string `xml:"cardholdercurrency,omitempty"`
	CardHolderAmount        int64  `xml:"cardholderamount,omitempty"`
	CardHolderRate          string `xml:"cardholderrate,omitempty"`
	MerchantCurrency        string `xml:"merchantcurrency,omitempty"`
	MerchantAmount          int64  `xml:"merchantamount,omitempty"`
	MarginRatePercentage    string `xml:"marginratepercentage,omitempty"`
	ExchangeRateSourceName  string `xml:"exchangeratesourcename,omitempty"`
	CommissionPercentage    string `xml:"commissionpercentage,omitempty"`
	ExchangeRateSourceTime  string `xml:"exchangeratesourcetimestamp,omitempty"`
}

// IsSuccess reports whether the gateway approved the transaction.
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
