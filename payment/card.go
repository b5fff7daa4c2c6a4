package payment

// CardType is the card scheme sent in the card's type element.
type CardType string

const (
	Visa       CardType = "VISA"
	Mastercard CardType = "MC"
	Amex       CardType = "AMEX"
	CB         CardType = "CB"
	Diners     CardType = "DINERS"
	JCB        CardType = "JCB"
)

// PresenceIndicator states how (or whether) the security code was supplied.
type PresenceIndicator string

const (
	CVNPresent     PresenceIndicator = "1"
	CVNIllegible   PresenceIndicator = "2"
	CVNNotOnCard   PresenceIndicator = "3"
	CVNNotRequested PresenceIndicator = "4"
)

// CVN is the card security code together with its presence indicator.
type CVN struct {
	Number            string            `xml:"number,omitempty"`
	PresenceIndicator PresenceIndicator `xml:"presind,omitempty"`
}

// Card is a payment card. Reference and PayerReference are only set on
// vault card maintenance requests; the remaining fields describe the
// physical card.
type Card struct {
	Reference      string   `xml:"ref,omitempty"`
	PayerReference string   `xml:"payerref,omitempty"`
	Number         string   `xml:"number,omitempty"`
	ExpiryDate     string   `xml:"expdate,omitempty"`
	CardHolderName string   `xml:"chname,omitempty"`
	Type           CardType `xml:"type,omitempty"`
	IssueNumber    string   `xml:"issueno,omitempty"`
	CVN            *CVN     `xml:"cvn,omitempty"`
}

// WithCVN attaches the security code, marking it as present.
func (c *Card) WithCVN(number string) *Card {
	c.CVN = &CVN{Number: number, PresenceIndicator: CVNPresent}
	return c
}
