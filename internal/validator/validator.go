package validator

import (
	"github.com/go-playground/validator/v10"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
)

var validate *validator.Validate

func NewValidator() *validator.Validate {
	validate = validator.New()
	return validate
}

// ValidateRequest validates the struct tags of req and marks failures as
// validation errors carrying one detail per offending field.
func ValidateRequest(req interface{}) error {
	if validate == nil {
		return errNotInitialized()
	}

	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fieldErr := range validateErrs {
				details[fieldErr.Field()] = fieldErr.Tag()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ValidateEndpoint checks that raw is an absolute http or https URL
func ValidateEndpoint(raw string) error {
	if validate == nil {
		return errNotInitialized()
	}

	if err := validate.Var(raw, "required,http_url"); err != nil {
		return ierr.WithError(err).
			WithHintf("%q is not an absolute http(s) URL", raw).
			WithReportableDetails(map[string]any{"endpoint": raw}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func errNotInitialized() error {
	return ierr.NewError("validator not initialized").
		WithHint("Validator must be initialized before using it").
		Mark(ierr.ErrSystem)
}
