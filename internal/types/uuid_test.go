package types

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNSU(t *testing.T) {
	nsu := GenerateOrderNSU()
	assert.Len(t, nsu, 8)
	assert.Regexp(t, "^[0-9A-Z]{8}$", nsu)
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	tests := []struct {
		name     string
		generate func() string
	}{
		{name: "order nsu", generate: GenerateOrderNSU},
		{name: "short id", generate: GenerateShortID},
		{name: "transaction nsu", generate: GenerateTransactionNSU},
	}

	const n = 2000
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[string]struct{}, n)
			for i := 0; i < n; i++ {
				id := tt.generate()
				require.NotEmpty(t, id)
				seen[id] = struct{}{}
			}
			assert.Len(t, seen, n)
		})
	}
}

func TestGenerateTransactionNSU(t *testing.T) {
	nsu := GenerateTransactionNSU()
	_, err := uuid.Parse(nsu)
	require.NoError(t, err)
	assert.NotEqual(t, nsu, GenerateTransactionNSU())
}

func TestCaptureMethodValidate(t *testing.T) {
	assert.NoError(t, CaptureMethodPix.Validate())
	assert.NoError(t, CaptureMethodCreditCard.Validate())
	assert.Error(t, CaptureMethod("boleto").Validate())
}

func TestWithInvocationID(t *testing.T) {
	ctx := WithInvocationID(context.Background())
	id := GetInvocationID(ctx)
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetInvocationID(WithInvocationID(ctx)))
}
