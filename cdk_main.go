package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"

	"github.com/rocky-jaiswal/static-site-cdk/config"
	"github.com/rocky-jaiswal/static-site-cdk/config/settings"
	"github.com/rocky-jaiswal/static-site-cdk/lib/preflight"
	"github.com/rocky-jaiswal/static-site-cdk/lib/site"
	"github.com/rocky-jaiswal/static-site-cdk/stacks"
)

const preflightTimeout = 30 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred calls complete before exiting.
func run(args []string) int {
	inv, err := config.Load(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	logger := newLogger(inv.Verbose)
	defer logger.Sync() //nolint:errcheck

	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return 1
	}
	if err := synth(inv, logger); err != nil {
		logger.Error("synthesis failed", zap.Error(err))
		return 1
	}
	return 0
}

func synth(inv config.Invocation, logger *zap.Logger) error {
	cfg := inv.Site

	siteSettings, err := settings.LoadConfig(cfg.SettingsPath)
	if err != nil {
		return err
	}

	builder, err := site.NewBuilder(cfg, siteSettings, logger)
	if err != nil {
		return err
	}

	if inv.Preflight {
		sess, err := session.NewSessionWithOptions(session.Options{
			Config:            aws.Config{Region: aws.String(cfg.Region)},
			SharedConfigState: session.SharedConfigEnable,
		})
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), preflightTimeout)
		defer cancel()
		if err := preflight.New(sess, logger).Run(ctx, cfg); err != nil {
			return err
		}
	}

	defer jsii.Close()
	app := awscdk.NewApp(nil)

	if _, err := stacks.StaticSite(app, stacks.StaticSiteProps{
		Builder: builder,
		Logger:  logger,
	}); err != nil {
		return err
	}

	app.Synth(nil)
	logger.Info("cloud assembly written", zap.String("outdir", *app.Outdir()))
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	build := zap.NewProduction
	if verbose {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
