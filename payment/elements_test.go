package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	tests := []struct {
		name     string
		major    string
		currency string
		want     int64
	}{
		{name: "euro cents", major: "19.99", currency: "EUR", want: 1999},
		{name: "whole euros", major: "100", currency: "EUR", want: 10000},
		{name: "yen has no minor unit", major: "1500", currency: "JPY", want: 1500},
		{name: "dinar has three", major: "1.250", currency: "BHD", want: 1250},
		{name: "sub-minor precision rounds", major: "0.005", currency: "EUR", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			major, err := decimal.NewFromString(tt.major)
			require.NoError(t, err)

			a := NewAmount(major, tt.currency)
			assert.Equal(t, tt.want, a.Value)
			assert.Equal(t, tt.currency, a.Currency)
		})
	}
}

func TestCardWithCVN(t *testing.T) {
	card := (&Card{Number: "4263971921001307"}).WithCVN("123")

	require.NotNil(t, card.CVN)
	assert.Equal(t, "123", card.CVN.Number)
	assert.Equal(t, CVNPresent, card.CVN.PresenceIndicator)
}
