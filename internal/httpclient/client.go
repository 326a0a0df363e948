package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/vibesbot/webhook-invoker/internal/config"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
)

// Request represents an HTTP request
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
	// Timeout bounds the wait for the response headers and each pause
	// while the body is read. Zero uses the client default.
	Timeout time.Duration
}

// Response represents an HTTP response
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// IsSuccess reports a 2xx status. Callers decide whether that matters;
// Send never turns a status code into an error.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client interface for making HTTP requests
type Client interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// DefaultClient implements the Client interface
type DefaultClient struct {
	client  *http.Client
	timeout time.Duration
}

// NewDefaultClient creates a client whose default timeout is the configured
// webhook timeout
func NewDefaultClient(cfg *config.Configuration) Client {
	timeout := config.DefaultTimeout
	if cfg != nil && cfg.Webhook.Timeout > 0 {
		timeout = cfg.Webhook.Timeout
	}
	return NewClientWithTimeout(timeout)
}

// NewClientWithTimeout creates a client using timeout for requests that
// do not carry their own. The http.Client has no overall deadline; see
// Request.Timeout.
func NewClientWithTimeout(timeout time.Duration) Client {
	return &DefaultClient{
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Send makes exactly one HTTP request and returns whatever response arrives
func (c *DefaultClient) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	ctx, dog, cancel := newWatchdog(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Could not build a %s request for %s", req.Method, req.URL).
			Mark(ierr.ErrValidation)
	}

	// Set Content-Length if body is present
	if req.Body != nil {
		httpReq.ContentLength = int64(len(req.Body))
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// Set headers
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, classify(err, req.URL, dog.expired())
	}
	defer resp.Body.Close()

	dog.kick()
	respBody, err := io.ReadAll(&idleReader{r: resp.Body, w: dog})
	if err != nil {
		return nil, classify(err, req.URL, dog.expired())
	}

	// Copy response headers
	headers := make(map[string]string)
	for k, v := range resp.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Headers:    headers,
	}, nil
}
