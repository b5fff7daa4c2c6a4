package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyResult(t *testing.T) {
	tests := []struct {
		result  string
		want    Outcome
		wantOK  bool
	}{
		{result: "00", want: OutcomeSuccess, wantOK: true},
		{result: "101", want: OutcomeDecline, wantOK: true},
		{result: "102", want: OutcomeDecline, wantOK: true},
		{result: "103", want: OutcomeDecline, wantOK: true},
		{result: "110", want: OutcomeDecline, wantOK: true},
		{result: "205", want: OutcomeDecline, wantOK: true},
		{result: "0", want: OutcomeDecline, wantOK: true},
		{result: "300", want: OutcomeError, wantOK: true},
		{result: "3", want: OutcomeError, wantOK: true},
		{result: "508", want: OutcomeError, wantOK: true},
		{result: "666", want: OutcomeError, wantOK: true},
		{result: "9999", want: OutcomeError, wantOK: true},
		{result: "", wantOK: false},
		{result: "xx", wantOK: false},
		{result: "-1", wantOK: false},
	}

	for _, tt := range tests {
		t.Run("result "+tt.result, func(t *testing.T) {
			got, ok := ClassifyResult(tt.result)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "decline", OutcomeDecline.String())
	assert.Equal(t, "error", OutcomeError.String())
}
