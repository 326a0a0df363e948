package config

import (
	"net/url"
	"strings"
	"time"
)

// WebhookConfig describes where and how the payload is delivered
type WebhookConfig struct {
	// Endpoint is the full webhook URL; when empty it is built from BaseURL, User and Path
	Endpoint    string            `mapstructure:"endpoint" validate:"required,http_url"`
	BaseURL     string            `mapstructure:"base_url"`
	User        string            `mapstructure:"user"`
	Path        string            `mapstructure:"path"`
	Timeout     time.Duration     `mapstructure:"timeout" validate:"gt=0"`
	Headers     map[string]string `mapstructure:"headers"`
	PayloadFile string            `mapstructure:"payload_file"`
}

// ResolveEndpoint returns Endpoint if set, otherwise BaseURL/User/Path as
// mounted by the receiver (`/:user/api/webhook`). An empty string means
// no endpoint could be derived.
func (w WebhookConfig) ResolveEndpoint() string {
	if w.Endpoint != "" {
		return w.Endpoint
	}
	if w.BaseURL == "" {
		return ""
	}

	segments := make([]string, 0, 2)
	if user := strings.Trim(w.User, "/"); user != "" {
		segments = append(segments, user)
	}
	if path := strings.Trim(w.Path, "/"); path != "" {
		segments = append(segments, path)
	}

	endpoint, err := url.JoinPath(w.BaseURL, segments...)
	if err != nil {
		return ""
	}
	return endpoint
}
