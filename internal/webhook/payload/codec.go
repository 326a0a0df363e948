package payload

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
	webhookDto "github.com/vibesbot/webhook-invoker/internal/webhook/dto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode serializes the payload as the UTF-8 JSON request body
func Encode(p *webhookDto.WebhookPayload) ([]byte, error) {
	if p == nil {
		return nil, ierr.NewError("payload is nil").
			WithHint("A webhook payload is required").
			Mark(ierr.ErrValidation)
	}

	body, err := json.Marshal(p)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unable to encode webhook payload").
			Mark(ierr.ErrSystem)
	}
	return body, nil
}

// EncodeIndent is Encode for humans, used by dry runs
func EncodeIndent(p *webhookDto.WebhookPayload) ([]byte, error) {
	if p == nil {
		return nil, ierr.NewError("payload is nil").
			WithHint("A webhook payload is required").
			Mark(ierr.ErrValidation)
	}

	body, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unable to encode webhook payload").
			Mark(ierr.ErrSystem)
	}
	return body, nil
}

// Decode parses a JSON document into a payload. Fields are taken as they
// are; nothing is validated.
func Decode(data []byte) (*webhookDto.WebhookPayload, error) {
	var p webhookDto.WebhookPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Payload must be a JSON object matching the webhook schema").
			Mark(ierr.ErrValidation)
	}
	return &p, nil
}

// LoadFile reads a payload from a JSON file
func LoadFile(path string) (*webhookDto.WebhookPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Could not read payload file %s", path).
			Mark(ierr.ErrValidation)
	}
	return Decode(data)
}
