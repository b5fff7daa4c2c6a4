package gateway_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevin07696/gateway-sdk/gateway"
	"github.com/kevin07696/gateway-sdk/payment"
	gwerrors "github.com/kevin07696/gateway-sdk/pkg/errors"
	"github.com/kevin07696/gateway-sdk/signing"
)

const testSecret = "mysecret"

// signedResponse renders a response document whose hash verifies under
// testSecret.
func signedResponse(orderID, result, message, pasref, authcode string) string {
	ts := "20120926112654"
	hash := signing.Sign(signing.CanonicalResponse(signing.ResponseValues{
		Timestamp:         ts,
		MerchantID:        "thestore",
		OrderID:           orderID,
		Result:            result,
		Message:           message,
		PaymentsReference: pasref,
		AuthCode:          authcode,
	}), testSecret)

	return fmt.Sprintf(`<response timestamp="%s">
  <merchantid>thestore</merchantid>
  <orderid>%s</orderid>
  <result>%s</result>
  <authcode>%s</authcode>
  <message>%s</message>
  <pasref>%s</pasref>
  <sha1hash>%s</sha1hash>
</response>`, ts, orderID, result, authcode, message, pasref, hash)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := gateway.NewClient(testSecret, gateway.Config{
		Endpoint:  server.URL,
		AllowHTTP: true,
		Logger:    zap.NewNop(),
	})
	require.NoError(t, err)
	return client
}

func authRequest() *payment.Request {
	return payment.NewRequest(payment.Auth).
		WithMerchantID("thestore").
		WithOrderID("ORD453-11").
		WithAmount(29900, "EUR").
		WithCard(&payment.Card{Number: "4263971921001307", ExpiryDate: "1229", Type: payment.Visa})
}

func TestSendSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `type="auth"`)
		assert.Contains(t, string(body), "<sha1hash>")

		io.WriteString(w, signedResponse("ORD453-11", "00", "Successful", "3737468273643", "79347"))
	})

	resp, err := client.Send(context.Background(), authRequest())
	require.NoError(t, err)

	auth, ok := resp.(*payment.Response)
	require.True(t, ok)
	assert.True(t, auth.IsSuccess())
	assert.Equal(t, "3737468273643", auth.PaymentsRef)
	assert.Equal(t, "79347", auth.AuthCode)
}

func TestSendDeclineIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, signedResponse("ORD453-11", "101", "DECLINED", "3737468273643", ""))
	})

	resp, err := client.Send(context.Background(), authRequest())
	require.NoError(t, err)

	auth := resp.(*payment.Response)
	assert.False(t, auth.IsSuccess())
	assert.Equal(t, "101", auth.Result)
	assert.Equal(t, "DECLINED", auth.Message)
}

func TestSendServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Gateway-side failures come back unhashed.
		io.WriteString(w, `<response timestamp="20120926112654">
  <merchantid>thestore</merchantid>
  <orderid>ORD453-11</orderid>
  <result>508</result>
  <message>Invalid timestamp</message>
</response>`)
	})

	resp, err := client.Send(context.Background(), authRequest())
	assert.Nil(t, resp)

	var serverErr *gwerrors.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "508", serverErr.Code)
	assert.Equal(t, "Invalid timestamp", serverErr.Message)
	assert.Equal(t, "ORD453-11", serverErr.OrderID)
	assert.Equal(t, "20120926112654", serverErr.Timestamp)
}

func TestSendIntegrityError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<response timestamp="20120926112654">
  <merchantid>thestore</merchantid>
  <orderid>ORD453-11</orderid>
  <result>00</result>
  <message>Successful</message>
  <pasref>3737468273643</pasref>
  <authcode>79347</authcode>
  <sha1hash>0000000000000000000000000000000000000000</sha1hash>
</response>`)
	})

	resp, err := client.Send(context.Background(), authRequest())
	assert.Nil(t, resp)

	var integrityErr *gwerrors.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
}

func TestSendTransportErrorOnBadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	resp, err := client.Send(context.Background(), authRequest())
	assert.Nil(t, resp)

	var transportErr *gwerrors.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
}

func TestSendTransportErrorOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(server.Close)

	client, err := gateway.NewClient(testSecret, gateway.Config{
		Endpoint:  server.URL,
		Timeout:   50 * time.Millisecond,
		AllowHTTP: true,
	})
	require.NoError(t, err)

	resp, err := client.Send(context.Background(), authRequest())
	assert.Nil(t, resp)

	var transportErr *gwerrors.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSendDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body>Bad Gateway</body></html")
	})

	resp, err := client.Send(context.Background(), authRequest())
	assert.Nil(t, resp)

	var decodeErr *gwerrors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestSendProtocolError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<response timestamp="20120926112654">
  <merchantid>thestore</merchantid>
  <orderid>ORD453-11</orderid>
  <result>unknown</result>
</response>`)
	})

	resp, err := client.Send(context.Background(), authRequest())
	assert.Nil(t, resp)

	var protocolErr *gwerrors.ProtocolError
	require.ErrorAs(t, err, &protocolErr)
}

func TestSendRejectsUnsignableType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the wire")
	})

	resp, err := client.Send(context.Background(), payment.NewRequest(payment.Type("refund")))
	assert.Nil(t, resp)
	require.Error(t, err)
}

func TestNewClientValidation(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		_, err := gateway.NewClient("", gateway.Config{})
		require.Error(t, err)
	})

	t.Run("refuses plain http by default", func(t *testing.T) {
		_, err := gateway.NewClient(testSecret, gateway.Config{Endpoint: "http://localhost:8080/gateway"})
		require.Error(t, err)
	})

	t.Run("allows plain http when opted in", func(t *testing.T) {
		_, err := gateway.NewClient(testSecret, gateway.Config{Endpoint: "http://localhost:8080/gateway", AllowHTTP: true})
		require.NoError(t, err)
	})

	t.Run("defaults to the production endpoint", func(t *testing.T) {
		_, err := gateway.NewClient(testSecret, gateway.Config{})
		require.NoError(t, err)
	})
}
