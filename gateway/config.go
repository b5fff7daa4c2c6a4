package gateway

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	gatewayhttp "github.com/kevin07696/gateway-sdk/pkg/http"
)

const (
	// DefaultEndpoint is the production gateway URL.
	DefaultEndpoint = "https://api.realexpayments.com/epage-remote.cgi"

	// DefaultTimeout bounds a whole send, connection establishment
	// included. The gateway holds requests while the acquirer responds,
	// so the bound is deliberately generous.
	DefaultTimeout = 65 * time.Second
)

// Config carries the client settings. The zero value is usable: it points
// at the production endpoint with the default timeout, refuses plain HTTP
// and logs nothing.
type Config struct {
	// Endpoint is the gateway URL requests are posted to.
	Endpoint string

	// Timeout bounds each send, including retrieving the response.
	Timeout time.Duration

	// AllowHTTP permits a plain-HTTP endpoint. Only enable it against
	// local test doubles; the production gateway is HTTPS only.
	AllowHTTP bool

	// HTTPClient overrides the pooled default client. Its own Timeout is
	// left untouched; per-send deadlines come from Timeout above.
	HTTPClient *http.Client

	// Logger receives structured request/response logs. Card numbers and
	// secrets are never logged.
	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = gatewayhttp.NewClient(gatewayhttp.DefaultConfig())
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
