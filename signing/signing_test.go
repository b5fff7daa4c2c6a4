package signing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		secret    string
		want      string
	}{
		{
			name:      "auth canonical",
			canonical: "20151201094345.thestore.ORD453-11.29900.EUR.420000000000000000",
			secret:    "mysecret",
			want:      "085f09727da50c2392b64894f962e7eb5050f762",
		},
		{
			name:      "response canonical",
			canonical: "20120926112654.thestore.ORD453-11.00.Successful.3737468273643.79347",
			secret:    "mysecret",
			want:      "368df010076481d47a21e777871012b62b976339",
		},
		{
			name:      "empty canonical still signs",
			canonical: "",
			secret:    "mysecret",
			want:      Sign("", "mysecret"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sign(tt.canonical, tt.secret))
		})
	}
}

func TestSignIsDeterministic(t *testing.T) {
	canonical := "20151201094345.thestore.ORD453-11.29900.EUR.420000000000000000"
	assert.Equal(t, Sign(canonical, "mysecret"), Sign(canonical, "mysecret"))
	assert.NotEqual(t, Sign(canonical, "mysecret"), Sign(canonical, "othersecret"))
}

func TestVerify(t *testing.T) {
	canonical := "20120926112654.thestore.ORD453-11.00.Successful.3737468273643.79347"

	assert.True(t, Verify(canonical, "mysecret", "368df010076481d47a21e777871012b62b976339"))
	assert.False(t, Verify(canonical, "mysecret", "368df010076481d47a21e777871012b62b976330"))
	// Uppercase hex does not verify; the comparison is exact.
	assert.False(t, Verify(canonical, "mysecret", "368DF010076481D47A21E777871012B62B976339"))
	assert.False(t, Verify(canonical, "wrongsecret", "368df010076481d47a21e777871012b62b976339"))
}
