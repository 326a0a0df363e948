package testutil

import (
	"context"

	"github.com/vibesbot/webhook-invoker/internal/types"
)

func SetupContext() context.Context {
	return types.WithInvocationID(context.Background())
}
