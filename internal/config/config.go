package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
	"github.com/vibesbot/webhook-invoker/internal/types"
)

const (
	EnvPrefix      = "INVOKER"
	DefaultTimeout = 15 * time.Second
	DefaultPath    = "api/webhook"
)

type Configuration struct {
	Webhook WebhookConfig `validate:"required"`
	Logging LoggingConfig `validate:"required"`
	Sentry  SentryConfig
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required,log_level"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn" validate:"required_if=Enabled true"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// flagKeys maps command line flags onto configuration keys
var flagKeys = map[string]string{
	"endpoint":  "webhook.endpoint",
	"base-url":  "webhook.base_url",
	"user":      "webhook.user",
	"path":      "webhook.path",
	"timeout":   "webhook.timeout",
	"payload":   "webhook.payload_file",
	"log-level": "logging.level",
}

// NewConfig loads the configuration from defaults, an optional config.yaml,
// an optional .env file, INVOKER_* environment variables and flags, in
// increasing order of precedence.
func NewConfig(flags *pflag.FlagSet) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	// a missing .env is the common case
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, ierr.WithError(err).
			WithHint("The .env file in the working directory could not be parsed").
			Mark(ierr.ErrValidation)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath("/etc/webhook-invoker")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if flags != nil {
		if path, err := flags.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
		}
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, ierr.WithError(err).Mark(ierr.ErrSystem)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, ierr.WithError(err).
				WithHintf("Could not read config file %s", v.ConfigFileUsed()).
				Mark(ierr.ErrValidation)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Configuration values have the wrong type").
			Mark(ierr.ErrValidation)
	}

	config.Webhook.Endpoint = config.Webhook.ResolveEndpoint()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("webhook.endpoint", "")
	v.SetDefault("webhook.base_url", "")
	v.SetDefault("webhook.user", "")
	v.SetDefault("webhook.path", DefaultPath)
	v.SetDefault("webhook.timeout", DefaultTimeout)
	v.SetDefault("webhook.payload_file", "")
	v.SetDefault("webhook.headers", map[string]string{})
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "local")
	v.SetDefault("sentry.sample_rate", 1.0)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("log_level", validateLogLevel); err != nil {
		return ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	if err := validate.Struct(c); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			for _, fieldErr := range validateErrs {
				details[fieldErr.Namespace()] = fieldErr.Tag()
			}
		}
		return ierr.WithError(err).
			WithHint("Set --endpoint (or --base-url and --user) to an absolute http(s) URL and --timeout to a positive duration").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func validateLogLevel(fl validator.FieldLevel) bool {
	return types.LogLevel(fl.Field().String()).Validate() == nil
}

// GetDefaultConfig returns the configuration used when nothing is supplied
// except an endpoint, useful for tests and programmatic use.
func GetDefaultConfig(endpoint string) *Configuration {
	return &Configuration{
		Webhook: WebhookConfig{
			Endpoint: endpoint,
			Path:     DefaultPath,
			Timeout:  DefaultTimeout,
			Headers:  map[string]string{},
		},
		Logging: LoggingConfig{Level: types.LogLevelInfo},
	}
}
