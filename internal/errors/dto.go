package errors

import (
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
)

// json encodes the reportable details attached by the builder
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorDetail is what the CLI prints to stderr for a failed run
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Hints   []string       `json:"hints,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Describe flattens an error chain into an ErrorDetail
func Describe(err error) ErrorDetail {
	detail := ErrorDetail{
		Code:    ErrCodeSystemError,
		Message: err.Error(),
		Hints:   errors.GetAllHints(err),
	}

	for _, sentinel := range []*InternalError{ErrValidation, ErrProtocol, ErrTransport, ErrSystem} {
		if errors.Is(err, sentinel) {
			detail.Code = sentinel.Code
			break
		}
	}
	detail.Message = strings.TrimPrefix(detail.Message, detail.Code+": ")

	for _, safe := range errors.GetAllSafeDetails(err) {
		for _, payload := range safe.SafeDetails {
			raw, ok := strings.CutPrefix(payload, "__json__:")
			if !ok {
				continue
			}
			var fields map[string]any
			if json.Unmarshal([]byte(raw), &fields) != nil {
				continue
			}
			if detail.Details == nil {
				detail.Details = make(map[string]any, len(fields))
			}
			for k, v := range fields {
				detail.Details[k] = v
			}
		}
	}

	return detail
}

// String renders the detail for a terminal
func (d ErrorDetail) String() string {
	var sb strings.Builder
	sb.WriteString(d.Code)
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	for _, hint := range d.Hints {
		sb.WriteString("\nhint: ")
		sb.WriteString(hint)
	}
	return sb.String()
}
