package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bazarly/bazarly-go/internal/config"
	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/store"
	"github.com/bazarly/bazarly-go/internal/utils"
)

// Client is the single shared HTTP client every domain service call passes
// through. Its configuration (base URL, timeout, default headers) is applied
// once at construction and never changes afterwards.
type Client struct {
	http  *resty.Client
	creds store.CredentialStore
	ids   *utils.UUIDGenerator

	// onSessionExpired is invoked by the inbound stage when a non-auth
	// request hits a 401 and the persisted token is erased. Set once during
	// wiring, before any request is issued.
	onSessionExpired func()

	logger *logger.Logger
}

// Response carries the pieces of a successful HTTP exchange the caller may
// need: status, headers (for token extraction on login), and payload bytes.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New constructs the shared client. It normalises and validates the base URL
// from apiCfg.BaseURL and configures the underlying resty client with the
// resolved base URL, the fixed request timeout, and a JSON content-type
// default header.
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func New(apiCfg config.ClientAPI, creds store.CredentialStore, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	timeout := apiCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   cli,
		creds:  creds,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSessionExpiredHook registers the callback fired when the inbound stage
// invalidates the session. Must be called during wiring, before the client
// serves requests.
func (c *Client) SetSessionExpiredHook(hook func()) {
	c.onSessionExpired = hook
}

// Get issues a GET request with optional query parameters and returns the
// payload bytes, or a classified error.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	d := NewDescriptor(http.MethodGet, path)
	d.Query = query

	resp, err := c.Do(ctx, d)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Post issues a POST request with a JSON body and returns the payload bytes,
// or a classified error.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	d := NewDescriptor(http.MethodPost, path)
	d.Body = body

	resp, err := c.Do(ctx, d)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	d := NewDescriptor(http.MethodPut, path)
	d.Body = body

	resp, err := c.Do(ctx, d)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	d := NewDescriptor(http.MethodPatch, path)
	d.Body = body

	resp, err := c.Do(ctx, d)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	d := NewDescriptor(http.MethodDelete, path)

	resp, err := c.Do(ctx, d)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Do runs one request through both interceptor stages and returns the full
// response. Domain services that need response headers (login token
// extraction) call Do directly; everything else goes through the verb
// wrappers.
func (c *Client) Do(ctx context.Context, d *Descriptor) (*Response, error) {
	requestID := c.ids.Generate()

	req := c.http.R().
		SetContext(ctx).
		SetHeaders(c.outbound(ctx, d))
	if d.Query != nil {
		req.SetQueryParamsFromValues(d.Query)
	}
	if d.Body != nil {
		req.SetBody(d.Body)
	}

	start := time.Now()
	resp, err := req.Execute(d.Method, d.Path)
	if err != nil {
		c.logger.Warn().
			Str("request_id", requestID).
			Str("method", d.Method).
			Str("path", d.Path).
			Err(err).
			Msg("request failed before a response was received")
		return nil, NetworkError(err)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", d.Method).
		Str("path", d.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if err = c.inbound(ctx, d, resp.StatusCode(), resp.Body()); err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// outbound is the credential-attachment stage. Non-auth requests read the
// current token from the credential store and carry it as a bearer header;
// auth endpoints are exempt so they can never be poisoned by a stale token.
// A store read failure is treated as "no token stored".
func (c *Client) outbound(ctx context.Context, d *Descriptor) map[string]string {
	if d.IsAuth {
		return nil
	}

	token, err := c.creds.Get(ctx, store.KeyAuthToken)
	if err != nil || token == "" {
		return nil
	}

	return map[string]string{"Authorization": "Bearer " + token}
}

// inbound is the classification-and-invalidation stage. Successful statuses
// pass through. A 401 on a non-auth request erases the persisted token
// (once; the descriptor's retried marker makes the erasure idempotent if
// the stage is invoked twice for the same failure), fires the
// session-expired hook, and surfaces KindSessionExpired without retrying the
// original request. A 401 on an auth endpoint means bad credentials and goes
// through the normal classifier. Everything else is classified as-is.
func (c *Client) inbound(ctx context.Context, d *Descriptor, status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	if status == http.StatusUnauthorized && !d.IsAuth {
		if !d.retried {
			d.retried = true
			if err := c.creds.Delete(ctx, store.KeyAuthToken); err != nil {
				c.logger.Warn().Err(err).Msg("failed to erase token after session expiry")
			}
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
		}
		return sessionExpiredError()
	}

	return Classify(status, body)
}
