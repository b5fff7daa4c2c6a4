package gateway

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	gwerrors "github.com/kevin07696/gateway-sdk/pkg/errors"
	"github.com/kevin07696/gateway-sdk/pkg/observability"
	"github.com/kevin07696/gateway-sdk/signing"
)

// Client sends signed requests to the gateway. It is safe for concurrent
// use; a single client should be shared across goroutines so the underlying
// connection pool is reused.
type Client struct {
	secret     string
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client for the given shared secret. The secret signs
// every request and verifies every response; it is never transmitted.
func NewClient(secret string, cfg Config) (*Client, error) {
	if secret == "" {
		return nil, fmt.Errorf("gateway: shared secret is required")
	}
	cfg = cfg.withDefaults()

	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse endpoint %q: %w", cfg.Endpoint, err)
	}
	if u.Scheme != "https" && !cfg.AllowHTTP {
		return nil, fmt.Errorf("gateway: endpoint %q is not https; set AllowHTTP to permit it", cfg.Endpoint)
	}

	return &Client{
		secret:     secret,
		cfg:        cfg,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

// Send signs the request, posts it and returns the verified response.
//
// A nil error means the gateway processed the transaction and the response
// hash checked out; inspect the response's result code, since business
// declines (insufficient funds, referrals) come back this way. Gateway-side
// failures return *errors.ServerError, tampered or misdelivered responses
// *errors.IntegrityError, connectivity problems *errors.TransportError and
// unreadable replies *errors.DecodeError.
//
// The context bounds the whole exchange together with the configured
// timeout, whichever expires first. Requests are posted exactly once; the
// client never retries, so a timed-out authorization may still have been
// processed and must be resolved out of band.
func (c *Client) Send(ctx context.Context, req Request) (Response, error) {
	start := time.Now()
	resp, outcome, err := c.send(ctx, req)
	observability.ObserveSend(req.TransactionType(), outcome, time.Since(start))
	return resp, err
}

func (c *Client) send(ctx context.Context, req Request) (Response, string, error) {
	if err := req.GenerateDefaults(c.secret); err != nil {
		return nil, "sign_error", err
	}

	body, err := req.MarshalRequest()
	if err != nil {
		return nil, "encode_error", fmt.Errorf("gateway: encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, "transport_error", &gwerrors.TransportError{Msg: "build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/xml")

	c.logger.Debug("sending gateway request",
		zap.String("type", req.TransactionType()),
		zap.String("endpoint", c.cfg.Endpoint),
	)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, "transport_error", &gwerrors.TransportError{Msg: "post request", Err: err}
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, "transport_error", &gwerrors.TransportError{StatusCode: httpResp.StatusCode, Msg: "read response body", Err: err}
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, "transport_error", &gwerrors.TransportError{StatusCode: httpResp.StatusCode, Msg: "unexpected status"}
	}

	resp := req.NewResponse()
	if err := xml.Unmarshal(payload, resp); err != nil {
		return nil, "decode_error", &gwerrors.DecodeError{Err: err}
	}

	sig := resp.Signable()
	outcome, ok := ClassifyResult(sig.Result)
	if !ok {
		return nil, "protocol_error", &gwerrors.ProtocolError{Result: sig.Result}
	}

	// Gateway-side failures are reported before the response is complete,
	// so they carry no hash to verify.
	if outcome == OutcomeError {
		c.logger.Warn("gateway rejected request",
			zap.String("type", req.TransactionType()),
			zap.String("order_id", sig.OrderID),
			zap.String("result", sig.Result),
		)
		return nil, "server_error", &gwerrors.ServerError{
			Timestamp: sig.Timestamp,
			OrderID:   sig.OrderID,
			Code:      sig.Result,
			Message:   sig.Message,
		}
	}

	if !signing.Verify(signing.CanonicalResponse(sig), c.secret, resp.ReceivedHash()) {
		c.logger.Error("response hash mismatch",
			zap.String("type", req.TransactionType()),
			zap.String("order_id", sig.OrderID),
		)
		return nil, "integrity_error", &gwerrors.IntegrityError{
			Msg: fmt.Sprintf("response hash mismatch for order %s", sig.OrderID),
		}
	}

	c.logger.Info("gateway response received",
		zap.String("type", req.TransactionType()),
		zap.String("order_id", sig.OrderID),
		zap.String("result", sig.Result),
		zap.String("outcome", outcome.String()),
	)
	return resp, outcome.String(), nil
}
