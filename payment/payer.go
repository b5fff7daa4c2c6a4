package payment

// PayerAddress is the postal address of a stored payer. Country carries the
// ISO country code as an attribute and the country name as its value.
type PayerAddress struct {
	Line1    string  `xml:"line1,omitempty"`
	Line2    string  `xml:"line2,omitempty"`
	Line3    string  `xml:"line3,omitempty"`
	City     string  `xml:"city,omitempty"`
	County   string  `xml:"county,omitempty"`
	Postcode string  `xml:"postcode,omitempty"`
	Country  Country `xml:"country,omitempty"`
}

// Country is a country name qualified by its ISO 3166 code.
type Country struct {
	Code string `xml:"code,attr,omitempty"`
	Name string `xml:",chardata"`
}

// PhoneNumbers holds the contact numbers of a stored payer.
type PhoneNumbers struct {
	Home   string `xml:"home,omitempty"`
	Work   string `xml:"work,omitempty"`
	Fax    string `xml:"fax,omitempty"`
	Mobile string `xml:"mobile,omitempty"`
}

// Payer is a stored payer record for payer-new and payer-edit requests.
// Ref is the merchant-chosen reference later quoted on receipt-in and
// card maintenance requests.
type Payer struct {
	Type         string        `xml:"type,attr,omitempty"`
	Ref          string        `xml:"ref,attr,omitempty"`
	Title        string        `xml:"title,omitempty"`
	FirstName    string        `xml:"firstname,omitempty"`
	Surname      string        `xml:"surname,omitempty"`
	Company      string        `xml:"company,omitempty"`
	Address      *PayerAddress `xml:"address,omitempty"`
	PhoneNumbers *PhoneNumbers `xml:"phonenumbers,omitempty"`
	Email        string        `xml:"email,omitempty"`
	Comments     []Comment     `xml:"comments>comment,omitempty"`
}
