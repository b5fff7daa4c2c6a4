// Package validation provides offline sanity checks for card data, useful
// for rejecting obvious typos before a request is ever sent.
package validation

import (
	"strconv"
	"strings"
	"time"
)

// CardNumber reports whether the card number passes the Luhn check.
// Spaces and dashes are ignored; anything else non-numeric fails, as do
// numbers outside the 12 to 19 digit range schemes issue.
func CardNumber(number string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)

	if len(cleaned) < 12 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		c := cleaned[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ExpiryDate reports whether the MMYY expiry date is well formed and not in
// the past. The card is valid through the last day of its expiry month.
func ExpiryDate(expdate string, now time.Time) bool {
	if len(expdate) != 4 {
		return false
	}
	month, err := strconv.Atoi(expdate[:2])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(expdate[2:])
	if err != nil {
		return false
	}
	year += (now.Year() / 100) * 100

	if year > now.Year() {
		return true
	}
	return year == now.Year() && time.Month(month) >= now.Month()
}

// SecurityCode reports whether the CVN has the length the scheme expects:
// four digits for AMEX, three for everything else. Scheme is the wire card
// type value, e.g. "AMEX" or "VISA".
func SecurityCode(cvn, scheme string) bool {
	want := 3
	if strings.EqualFold(scheme, "AMEX") {
		want = 4
	}
	if len(cvn) != want {
		return false
	}
	for i := 0; i < len(cvn); i++ {
		if cvn[i] < '0' || cvn[i] > '9' {
			return false
		}
	}
	return true
}
