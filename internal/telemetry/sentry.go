// Package telemetry wires error tracking and business metrics.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryConfig holds configuration for Sentry error tracking.
type SentryConfig struct {
	// DSN is the Sentry Data Source Name. Empty disables error tracking.
	DSN string

	// Environment identifies the deployment environment.
	Environment string

	// Release is the application version identifier.
	Release string

	// SampleRate controls the fraction of errors captured, default 1.0.
	SampleRate float64
}

var sentryEnabled bool

// InitSentry initializes Sentry. The returned cleanup flushes pending
// events and must run on shutdown.
func InitSentry(cfg SentryConfig, logger *slog.Logger) (func(), error) {
	if cfg.DSN == "" {
		logger.Info("sentry disabled, no DSN configured")
		sentryEnabled = false
		return func() {}, nil
	}

	sampleRate := cfg.SampleRate
	if sampleRate == 0 {
		sampleRate = 1.0
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		SampleRate:  sampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sentry: %w", err)
	}

	sentryEnabled = true
	logger.Info("sentry initialized",
		"environment", cfg.Environment,
		"sample_rate", sampleRate,
	)

	return func() { sentry.Flush(2 * time.Second) }, nil
}

// IsEnabled reports whether Sentry captures are active.
func IsEnabled() bool {
	return sentryEnabled
}

// CaptureError reports an error with optional extra context. Safe to call
// when Sentry is disabled.
func CaptureError(ctx context.Context, err error, extras map[string]any) {
	if !IsEnabled() || err == nil {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		for key, value := range extras {
			scope.SetExtra(key, value)
		}
		hub.CaptureException(err)
	})
}
