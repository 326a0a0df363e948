package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/vibesbot/webhook-invoker/internal/config"
	ierr "github.com/vibesbot/webhook-invoker/internal/errors"
	"github.com/vibesbot/webhook-invoker/internal/logger"
	"github.com/vibesbot/webhook-invoker/internal/sentry"
	"github.com/vibesbot/webhook-invoker/internal/validator"
	"github.com/vibesbot/webhook-invoker/internal/webhook"
	webhookDto "github.com/vibesbot/webhook-invoker/internal/webhook/dto"
	"github.com/vibesbot/webhook-invoker/internal/webhook/payload"
	"go.uber.org/dig"
	"go.uber.org/fx"
)

func init() {
	time.Local = time.UTC
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	flags, opts := newFlagSet(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ierr.ExitCodeOK
		}
		return ierr.ExitCodeUsage
	}

	var (
		cfg     *config.Configuration
		log     *logger.Logger
		invoker *webhook.Invoker
	)

	app := fx.New(
		fx.NopLogger,
		fx.Supply(flags),
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,
		),
		fx.Invoke(validator.NewValidator),
		sentry.Module(),
		webhook.Module,
		fx.Populate(&cfg, &log, &invoker),
	)
	if err := app.Err(); err != nil {
		return fail(stderr, dig.RootCause(err))
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fail(stderr, err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			log.Warnw("shutdown failed", "error", err)
		}
		log.Sync()
	}()

	p, err := buildPayload(cfg, opts)
	if err != nil {
		return fail(stderr, err)
	}

	if opts.dryRun {
		body, err := payload.EncodeIndent(p)
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprintln(stdout, string(body))
		return ierr.ExitCodeOK
	}

	if _, err := invoker.WithOutput(stdout).Run(context.Background(), p); err != nil {
		return fail(stderr, err)
	}
	return ierr.ExitCodeOK
}

func buildPayload(cfg *config.Configuration, opts *options) (*webhookDto.WebhookPayload, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	base := payload.Default()
	if cfg.Webhook.PayloadFile != "" {
		loaded, err := payload.LoadFile(cfg.Webhook.PayloadFile)
		if err != nil {
			return nil, err
		}
		base = loaded
	}
	return payload.Apply(base, opts.payloadOptions()...), nil
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, ierr.Describe(err).String())
	return ierr.ExitCodeFromErr(err)
}
