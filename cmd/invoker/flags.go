package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/vibesbot/webhook-invoker/internal/config"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
	"github.com/vibesbot/webhook-invoker/internal/types"
	"github.com/vibesbot/webhook-invoker/internal/webhook/payload"
)

// options holds the flags that shape the payload rather than the configuration
type options struct {
	orderNSU    string
	invoiceSlug string
	customer    string
	ttsText     string
	capture     string
	freshIDs    bool
	dryRun      bool
}

func newFlagSet(out io.Writer) (*pflag.FlagSet, *options) {
	opts := &options{}
	fs := pflag.NewFlagSet("webhook-invoker", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: webhook-invoker [flags]")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Posts a paid-invoice webhook payload and prints the response status and body.")
		fmt.Fprintln(out, "")
		fs.PrintDefaults()
	}

	// configuration, bound to viper keys
	fs.String("config", "", "Path to a config file (yaml)")
	fs.String("endpoint", "", "Full webhook URL, e.g. http://localhost:3000/ggtec/api/webhook")
	fs.String("base-url", "", "Receiver base URL, combined with --user and --path when --endpoint is empty")
	fs.String("user", "", "Receiver user segment")
	fs.String("path", config.DefaultPath, "Webhook path below the user segment")
	fs.Duration("timeout", config.DefaultTimeout, "Time to wait for the response")
	fs.String("payload", "", "JSON file with the payload to send instead of the built-in one")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")

	// payload
	fs.StringVar(&opts.orderNSU, "order-nsu", "", "Override order_nsu")
	fs.StringVar(&opts.invoiceSlug, "invoice-slug", "", "Override invoice_slug")
	fs.StringVar(&opts.customer, "customer", "", "Set customer_name")
	fs.StringVar(&opts.ttsText, "tts", "", "Set tts_text")
	fs.StringVar(&opts.capture, "capture-method", "", "Override capture_method: pix, credit_card, debit_card")
	fs.BoolVar(&opts.freshIDs, "fresh-ids", false, "Generate new order_nsu, invoice_slug and transaction_nsu")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "Print the payload instead of sending it")

	return fs, opts
}

func (o *options) validate() error {
	if o.capture == "" {
		return nil
	}
	if err := types.CaptureMethod(o.capture).Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("--capture-method must be one of pix, credit_card, debit_card").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// payloadOptions translates flags into builder options. Explicit
// identifiers are applied after --fresh-ids so they win.
func (o *options) payloadOptions() []payload.Option {
	var opts []payload.Option
	if o.freshIDs {
		opts = append(opts, payload.WithFreshIdentifiers())
	}
	if o.orderNSU != "" {
		opts = append(opts, payload.WithOrderNSU(o.orderNSU))
	}
	if o.invoiceSlug != "" {
		opts = append(opts, payload.WithInvoiceSlug(o.invoiceSlug))
	}
	if o.customer != "" {
		opts = append(opts, payload.WithCustomer(o.customer))
	}
	if o.ttsText != "" {
		opts = append(opts, payload.WithTTS(o.ttsText, ""))
	}
	if o.capture != "" {
		opts = append(opts, payload.WithCaptureMethod(types.CaptureMethod(o.capture)))
	}
	return opts
}
