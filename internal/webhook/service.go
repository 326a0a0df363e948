package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/vibesbot/webhook-invoker/internal/config"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
	"github.com/vibesbot/webhook-invoker/internal/httpclient"
	"github.com/vibesbot/webhook-invoker/internal/logger"
	"github.com/vibesbot/webhook-invoker/internal/sentry"
	"github.com/vibesbot/webhook-invoker/internal/types"
	"github.com/vibesbot/webhook-invoker/internal/validator"
	webhookDto "github.com/vibesbot/webhook-invoker/internal/webhook/dto"
	"github.com/vibesbot/webhook-invoker/internal/webhook/payload"
)

// Result is the response received for a webhook delivery
type Result struct {
	StatusCode int
	Body       string
	Duration   time.Duration
}

// IsSuccess reports a 2xx status. The invoker itself treats every
// received response as a completed delivery.
func (r *Result) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type sendRequest struct {
	Timeout time.Duration              `validate:"gt=0"`
	Payload *webhookDto.WebhookPayload `validate:"required"`
}

// Invoker posts a webhook payload and reports the response
type Invoker struct {
	config *config.Configuration
	client httpclient.Client
	logger *logger.Logger
	sentry *sentry.Service
	out    io.Writer
}

// NewInvoker creates an invoker reporting to stdout
func NewInvoker(
	cfg *config.Configuration,
	client httpclient.Client,
	logger *logger.Logger,
	sentry *sentry.Service,
) *Invoker {
	return &Invoker{
		config: cfg,
		client: client,
		logger: logger,
		sentry: sentry,
		out:    os.Stdout,
	}
}

// WithOutput returns a copy of the invoker reporting to w
func (s *Invoker) WithOutput(w io.Writer) *Invoker {
	clone := *s
	clone.out = w
	return &clone
}

// Send posts payload as JSON to endpoint. timeout bounds the wait for the
// response headers and each pause while the body streams in; a body that
// keeps arriving is read to the end. Any HTTP status is a result; only
// failing to get a response is an error. Nothing is retried.
func (s *Invoker) Send(
	ctx context.Context,
	endpoint string,
	p *webhookDto.WebhookPayload,
	timeout time.Duration,
) (*Result, error) {
	if err := validator.ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}
	if err := validator.ValidateRequest(sendRequest{
		Timeout: timeout,
		Payload: p,
	}); err != nil {
		return nil, err
	}

	body, err := payload.Encode(p)
	if err != nil {
		return nil, err
	}

	ctx = types.WithInvocationID(ctx)

	s.logger.Infow("sending webhook",
		"invocation_id", types.GetInvocationID(ctx),
		"endpoint", endpoint,
		"order_nsu", p.OrderNSU,
		"items", len(p.Items),
		"amount_brl", p.AmountReais(),
		"timeout", timeout.String(),
	)
	s.logger.Debugw("webhook payload", "payload", string(body))
	s.sentry.AddBreadcrumb("webhook", "dispatch", map[string]interface{}{
		"invocation_id": types.GetInvocationID(ctx),
		"endpoint":      endpoint,
		"order_nsu":     p.OrderNSU,
	})

	start := time.Now()
	resp, err := s.client.Send(ctx, &httpclient.Request{
		Method:  http.MethodPost,
		URL:     endpoint,
		Headers: s.headers(),
		Body:    body,
		Timeout: timeout,
	})
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Errorw("failed to send webhook",
			"error", err,
			"invocation_id", types.GetInvocationID(ctx),
			"endpoint", endpoint,
			"order_nsu", p.OrderNSU,
			"duration_ms", elapsed.Milliseconds(),
		)
		return nil, err
	}

	s.logger.Infow("webhook response received",
		"invocation_id", types.GetInvocationID(ctx),
		"endpoint", endpoint,
		"order_nsu", p.OrderNSU,
		"status_code", resp.StatusCode,
		"success", resp.IsSuccess(),
		"duration_ms", elapsed.Milliseconds(),
	)

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
		Duration:   elapsed,
	}, nil
}

// Run sends p to the configured endpoint and prints the report.
// On failure nothing is printed and the error is returned.
func (s *Invoker) Run(ctx context.Context, p *webhookDto.WebhookPayload) (*Result, error) {
	endpoint := s.config.Webhook.Endpoint
	result, err := s.Send(ctx, endpoint, p, s.config.Webhook.Timeout)
	if err != nil {
		if reportable(err) {
			tags := map[string]string{"endpoint": endpoint}
			if p != nil {
				tags["order_nsu"] = p.OrderNSU
			}
			s.sentry.CaptureException(err, tags)
		}
		return nil, err
	}

	if err := Report(s.out, result); err != nil {
		return nil, err
	}
	return result, nil
}

// reportable limits monitoring events to failed deliveries
func reportable(err error) bool {
	return ierr.IsTransport(err) || ierr.IsProtocol(err)
}

func (s *Invoker) headers() map[string]string {
	if s.config == nil {
		return nil
	}
	return s.config.Webhook.Headers
}

// Report writes the two line report for a received response
func Report(w io.Writer, r *Result) error {
	_, err := fmt.Fprintf(w, "Status: %d\nBody: %s\n", r.StatusCode, r.Body)
	return err
}
