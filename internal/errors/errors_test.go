package errors

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitCodeOK},
		{name: "transport", err: WithError(goerrors.New("connection refused")).Mark(ErrTransport), want: ExitCodeTransport},
		{name: "protocol", err: WithError(goerrors.New("no such host")).Mark(ErrProtocol), want: ExitCodeTransport},
		{name: "validation", err: NewError("bad endpoint").Mark(ErrValidation), want: ExitCodeUsage},
		{name: "unmarked", err: goerrors.New("boom"), want: ExitCodeTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromErr(tt.err))
		})
	}
}

func TestMarkedErrorsAreDistinct(t *testing.T) {
	err := NewError("dial tcp: i/o timeout").
		WithHint("The endpoint did not answer in time").
		Mark(ErrTransport)

	assert.True(t, IsTransport(err))
	assert.False(t, IsProtocol(err))
	assert.False(t, IsValidation(err))
}

func TestDescribe(t *testing.T) {
	err := NewError("lookup nowhere.invalid: no such host").
		WithHint("Check the endpoint host name").
		Mark(ErrProtocol)

	detail := Describe(err)
	assert.Equal(t, ErrCodeProtocol, detail.Code)
	assert.Contains(t, detail.Message, "no such host")
	assert.Equal(t, []string{"Check the endpoint host name"}, detail.Hints)
	assert.Contains(t, detail.String(), "hint: Check the endpoint host name")
}

func TestDescribeUnmarked(t *testing.T) {
	detail := Describe(goerrors.New("boom"))
	assert.Equal(t, ErrCodeSystemError, detail.Code)
	assert.Empty(t, detail.Hints)
}

func TestDescribeReportableDetails(t *testing.T) {
	err := NewError("context deadline exceeded").
		WithReportableDetails(map[string]any{"url": "http://localhost/api/webhook", "timeout": true}).
		WithReportableDetails(map[string]any{"attempt": 1}).
		Mark(ErrTransport)

	detail := Describe(err)
	assert.Equal(t, ErrCodeTransport, detail.Code)
	assert.Equal(t, "http://localhost/api/webhook", detail.Details["url"])
	assert.Equal(t, true, detail.Details["timeout"])
	assert.Equal(t, float64(1), detail.Details["attempt"])
}
