package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
	"github.com/vibesbot/webhook-invoker/internal/types"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("endpoint", "", "")
	fs.String("base-url", "", "")
	fs.String("user", "", "")
	fs.String("path", DefaultPath, "")
	fs.Duration("timeout", DefaultTimeout, "")
	fs.String("payload", "", "")
	fs.String("log-level", "info", "")
	return fs
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name string
		cfg  WebhookConfig
		want string
	}{
		{
			name: "explicit endpoint wins",
			cfg:  WebhookConfig{Endpoint: "http://localhost:3000/api/webhook", BaseURL: "http://other", User: "x"},
			want: "http://localhost:3000/api/webhook",
		},
		{
			name: "base url with user and default path",
			cfg:  WebhookConfig{BaseURL: "http://api.vibesbot.com.br", User: "ggtec", Path: DefaultPath},
			want: "http://api.vibesbot.com.br/ggtec/api/webhook",
		},
		{
			name: "slashes are normalised",
			cfg:  WebhookConfig{BaseURL: "https://example.com/", User: "/ggtec/", Path: "/api/webhook"},
			want: "https://example.com/ggtec/api/webhook",
		},
		{
			name: "base url without user",
			cfg:  WebhookConfig{BaseURL: "https://example.com", Path: DefaultPath},
			want: "https://example.com/api/webhook",
		},
		{
			name: "nothing to resolve",
			cfg:  WebhookConfig{User: "ggtec", Path: DefaultPath},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ResolveEndpoint())
		})
	}
}

func TestNewConfigFromFlags(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{
		"--base-url", "http://api.vibesbot.com.br",
		"--user", "ggtec",
		"--timeout", "3s",
		"--log-level", "debug",
	}))

	cfg, err := NewConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "http://api.vibesbot.com.br/ggtec/api/webhook", cfg.Webhook.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Webhook.Timeout)
	assert.Equal(t, types.LogLevelDebug, cfg.Logging.Level)
	assert.False(t, cfg.Sentry.Enabled)
}

func TestNewConfigDefaults(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--endpoint", "http://localhost:8080/api/webhook"}))

	cfg, err := NewConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, cfg.Webhook.Timeout)
	assert.Equal(t, types.LogLevelInfo, cfg.Logging.Level)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("INVOKER_WEBHOOK_ENDPOINT", "https://hooks.example.com/api/webhook")
	t.Setenv("INVOKER_WEBHOOK_TIMEOUT", "250ms")

	cfg, err := NewConfig(newFlagSet())
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example.com/api/webhook", cfg.Webhook.Endpoint)
	assert.Equal(t, 250*time.Millisecond, cfg.Webhook.Timeout)
}

func TestNewConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("INVOKER_WEBHOOK_ENDPOINT", "https://hooks.example.com/api/webhook")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--endpoint", "http://127.0.0.1:9000/api/webhook"}))

	cfg, err := NewConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/api/webhook", cfg.Webhook.Endpoint)
}

func TestNewConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoker.yaml")
	content := []byte(`webhook:
  endpoint: http://localhost:3000/ggtec/api/webhook
  timeout: 5s
  headers:
    x-source: smoke
logging:
  level: warn
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--config", path}))

	cfg, err := NewConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/ggtec/api/webhook", cfg.Webhook.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Webhook.Timeout)
	assert.Equal(t, "smoke", cfg.Webhook.Headers["x-source"])
	assert.Equal(t, types.LogLevelWarn, cfg.Logging.Level)
}

func TestNewConfigRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing endpoint", args: nil},
		{name: "relative endpoint", args: []string{"--endpoint", "/api/webhook"}},
		{name: "unsupported scheme", args: []string{"--endpoint", "ftp://example.com/api/webhook"}},
		{name: "zero timeout", args: []string{"--endpoint", "http://localhost/api/webhook", "--timeout", "0s"}},
		{name: "unknown log level", args: []string{"--endpoint", "http://localhost/api/webhook", "--log-level", "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlagSet()
			require.NoError(t, fs.Parse(tt.args))

			_, err := NewConfig(fs)
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}

func TestNewConfigMissingConfigFile(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--endpoint", "http://localhost/api/webhook",
	}))

	_, err := NewConfig(fs)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []types.LogLevel{types.LogLevelDebug, types.LogLevelInfo, types.LogLevelWarn, types.LogLevelError} {
		cfg := GetDefaultConfig("http://localhost/api/webhook")
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), level)
	}

	cfg := GetDefaultConfig("http://localhost/api/webhook")
	cfg.Logging.Level = "trace"
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.Equal(t, "log_level", ierr.Describe(err).Details["Configuration.Logging.Level"])
}
