package webhook

import (
	"github.com/vibesbot/webhook-invoker/internal/httpclient"
	"go.uber.org/fx"
)

// Module provides the webhook invoker and its HTTP client
var Module = fx.Options(
	fx.Provide(
		httpclient.NewDefaultClient,
		NewInvoker,
	),
)
