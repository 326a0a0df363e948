package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxInvocationID ContextKey = "ctx_invocation_id"
)

func GetInvocationID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxInvocationID).(string); ok {
		return id
	}
	return ""
}

// WithInvocationID stores a fresh invocation id unless one is already set
func WithInvocationID(ctx context.Context) context.Context {
	if GetInvocationID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, CtxInvocationID, GenerateUUID())
}
