package httpclient

import (
	"context"
	goerrors "errors"
	"net"

	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
)

// Error is a failure to obtain any HTTP response
type Error struct {
	*ierr.InternalError
	URL     string
	Timeout bool
}

func (e *Error) Unwrap() error {
	return e.InternalError.Unwrap()
}

func (e *Error) Error() string {
	return e.InternalError.Error()
}

// NewError creates a transport or protocol error for url
func NewError(code string, url string, cause error, timeout bool) *Error {
	return &Error{
		InternalError: ierr.New(code, cause),
		URL:           url,
		Timeout:       timeout,
	}
}

// IsHTTPError checks if an error is an HTTP client error
func IsHTTPError(err error) (*Error, bool) {
	var httpErr *Error
	if goerrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// classify maps a net/http failure onto the protocol (name resolution)
// or transport sentinel. expired is set when the idle watchdog cancelled
// the request, which surfaces as context.Canceled.
func classify(err error, url string, expired bool) error {
	var dnsErr *net.DNSError
	if !expired && goerrors.As(err, &dnsErr) && !dnsErr.IsTimeout {
		return ierr.WithError(NewError(ierr.ErrCodeProtocol, url, err, false)).
			WithHintf("Could not resolve host %s", dnsErr.Name).
			WithReportableDetails(map[string]any{"url": url, "host": dnsErr.Name}).
			Mark(ierr.ErrProtocol)
	}

	timeout := expired || goerrors.Is(err, context.DeadlineExceeded)
	var netErr net.Error
	if goerrors.As(err, &netErr) && netErr.Timeout() {
		timeout = true
	}

	hint := "Could not reach the webhook endpoint"
	if timeout {
		hint = "The webhook endpoint did not respond before the timeout elapsed"
	}

	return ierr.WithError(NewError(ierr.ErrCodeTransport, url, err, timeout)).
		WithHint(hint).
		WithReportableDetails(map[string]any{"url": url, "timeout": timeout}).
		Mark(ierr.ErrTransport)
}
