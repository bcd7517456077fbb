package gateway

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"skillhub/internal/config"
)

// Client is the typed binding to the remote entity gateway. Session
// credentials ride on the underlying cookie jar, so every request after the
// OAuth handshake carries them automatically.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a gateway client from configuration.
func NewClient(cfg config.GatewayConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	return &Client{http: http, logger: logger}
}

// NewClientWithHTTP creates a gateway client over an existing http.Client.
// Used by tests to talk to an httptest server.
func NewClientWithHTTP(baseURL string, hc *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:   resty.NewWithClient(hc).SetBaseURL(baseURL),
		logger: logger,
	}
}

// SetCookies seeds session cookies obtained out of band (e.g. from a saved
// session file).
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.http.SetCookies(cookies)
}

func (c *Client) newRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if id, err := uuid.NewV4(); err == nil {
		req.SetHeader("X-Request-ID", id.String())
	}
	return req
}

// checked classifies the outcome of a request into the gateway error
// taxonomy. A nil return means a 2xx response.
func (c *Client) checked(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Debug("gateway request failed",
			zap.String("op", op),
			zap.Error(err),
		)
		return NewTransportError(op, err)
	}
	if resp.IsError() {
		c.logger.Debug("gateway request rejected",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode()),
			zap.String("request_id", resp.Request.Header.Get("X-Request-ID")),
		)
		return NewStatusError(op, resp.StatusCode())
	}
	return nil
}
