package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
)

type target struct {
	Endpoint string        `validate:"required,http_url"`
	Timeout  time.Duration `validate:"gt=0"`
}

func TestValidateRequest(t *testing.T) {
	NewValidator()

	tests := []struct {
		name    string
		req     target
		wantErr bool
	}{
		{name: "valid", req: target{Endpoint: "https://example.com/api/webhook", Timeout: time.Second}},
		{name: "relative url", req: target{Endpoint: "api/webhook", Timeout: time.Second}, wantErr: true},
		{name: "negative timeout", req: target{Endpoint: "http://example.com", Timeout: -time.Second}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}

func TestValidateRequestUninitialized(t *testing.T) {
	saved := validate
	validate = nil
	t.Cleanup(func() { validate = saved })

	err := ValidateRequest(target{})
	require.Error(t, err)
	assert.True(t, ierr.Is(err, ierr.ErrSystem))
}

func TestValidateEndpoint(t *testing.T) {
	NewValidator()

	valid := []string{
		"http://api.vibesbot.com.br/ggtec/api/webhook",
		"https://127.0.0.1:8443/api/webhook",
	}
	for _, endpoint := range valid {
		assert.NoError(t, ValidateEndpoint(endpoint), endpoint)
	}

	invalid := []string{"", "/api/webhook", "ftp://example.com/api/webhook", "http://"}
	for _, endpoint := range invalid {
		err := ValidateEndpoint(endpoint)
		assert.Error(t, err, endpoint)
		assert.True(t, ierr.IsValidation(err), endpoint)
	}
}
