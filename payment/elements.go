package payment

import "github.com/shopspring/decimal"

// Amount is a monetary amount in the smallest unit of its currency.
type Amount struct {
	Currency string `xml:"currency,attr,omitempty"`
	Value    int64  `xml:",chardata"`
}

// NewAmount converts a major-unit decimal amount, e.g. "19.99", into minor
// units using the exponent of the currency (2 unless listed otherwise).
func NewAmount(major decimal.Decimal, currency string) *Amount {
	exp := int32(2)
	if e, ok := currencyExponents[currency]; ok {
		exp = e
	}
	return &Amount{
		Currency: currency,
		Value:    major.Shift(exp).Round(0).IntPart(),
	}
}

// ISO 4217 currencies whose minor unit is not two digits.
var currencyExponents = map[string]int32{
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0,
	"XOF": 0, "XPF": 0,
}

// AutoSettleFlag controls when an authorization is settled.
type AutoSettleFlag string

const (
	// AutoSettleTrue settles the transaction in that night's batch.
	AutoSettleTrue AutoSettleFlag = "1"
	// AutoSettleFalse leaves the transaction for delayed settlement.
	AutoSettleFalse AutoSettleFlag = "0"
	// AutoSettleMulti marks the transaction for multiple partial settlements.
	AutoSettleMulti AutoSettleFlag = "MULTI"
)

// AutoSettle carries the auto-settle (capture) flag.
type AutoSettle struct {
	Flag AutoSettleFlag `xml:"flag,attr"`
}

// Comment is free text attached to a transaction. The gateway stores at
// most two per request, numbered from one.
type Comment struct {
	ID    int    `xml:"id,attr"`
	Value string `xml:",chardata"`
}

// RecurringType marks a transaction as the first or a subsequent payment
// of a recurring series.
type RecurringType string

const (
	RecurringNone     RecurringType = "none"
	RecurringVariable RecurringType = "variable"
	RecurringFixed    RecurringType = "fixed"
)

// RecurringSequence marks the position of a payment in a recurring series.
type RecurringSequence string

const (
	SequenceFirst      RecurringSequence = "first"
	SequenceSubsequent RecurringSequence = "subsequent"
	SequenceLast       RecurringSequence = "last"
)

// RecurringFlag is the schedule indicator for recurring payments.
type RecurringFlag string

const (
	RecurringFlagNone  RecurringFlag = "0"
	RecurringFlagFixed RecurringFlag = "1"
	RecurringFlagVar   RecurringFlag = "2"
)

// Recurring flags a transaction as part of a recurring series.
type Recurring struct {
	Type     RecurringType     `xml:"type,attr,omitempty"`
	Sequence RecurringSequence `xml:"sequence,attr,omitempty"`
	Flag     RecurringFlag     `xml:"flag,attr,omitempty"`
}

// AddressType distinguishes billing and shipping addresses in TSS info.
type AddressType string

const (
	AddressNone     AddressType = ""
	AddressBilling  AddressType = "billing"
	AddressShipping AddressType = "shipping"
)

// Address is an address fragment screened by the transaction suitability
// service. For billing addresses Code carries the AVS code built from the
// postcode and address-line digits.
type Address struct {
	Type    AddressType `xml:"type,attr,omitempty"`
	Code    string      `xml:"code,omitempty"`
	Country string      `xml:"country,omitempty"`
}

// TSSInfo carries the fields screened by the transaction suitability
// service for real-time fraud checks.
type TSSInfo struct {
	CustomerNumber    string    `xml:"custnum,omitempty"`
	ProductID         string    `xml:"prodid,omitempty"`
	VariableReference string    `xml:"varref,omitempty"`
	CustomerIP        string    `xml:"custipaddress,omitempty"`
	Addresses         []Address `xml:"address,omitempty"`
}

// MPI carries the 3D Secure authentication results forwarded with an auth
// after a verify-signature step.
type MPI struct {
	CAVV string `xml:"cavv,omitempty"`
	XID  string `xml:"xid,omitempty"`
	ECI  string `xml:"eci,omitempty"`
}

// PaymentData carries the security code for transactions against a stored
// payment method.
type PaymentData struct {
	CVN CVNNumber `xml:"cvn"`
}

// CVNNumber wraps the security code inside a payment-data block.
type CVNNumber struct {
	Number string `xml:"number,omitempty"`
}

// DCCInfo carries the dynamic currency conversion offer: requested on a
// dccrate lookup, echoed with the rate on the follow-up auth.
type DCCInfo struct {
	// CCP is the currency conversion processor, e.g. "fexco".
	CCP      string `xml:"ccp,omitempty"`
	Type     string `xml:"type,omitempty"`
	Rate     string `xml:"rate,omitempty"`
	RateType string `xml:"ratetype,omitempty"`
	Amount   *Amount `xml:"amount,omitempty"`
}
