package observability

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

var sentryEnabled atomic.Bool

type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
}

// InitSentry enables error reporting when a DSN is configured. The returned
// function flushes pending events and is always safe to call.
func InitSentry(cfg SentryConfig) (func(), bool, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		sentryEnabled.Store(false)
		return func() {}, false, nil
	}

	options := sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      strings.TrimSpace(cfg.Environment),
		Release:          strings.TrimSpace(cfg.Release),
		AttachStacktrace: true,
	}

	if err := sentry.Init(options); err != nil {
		sentryEnabled.Store(false)
		return func() {}, false, err
	}

	sentryEnabled.Store(true)
	return func() {
		sentry.Flush(2 * time.Second)
	}, true, nil
}

func CaptureError(err error, tags map[string]string, extra map[string]interface{}) {
	if err == nil || !sentryEnabled.Load() {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for key, value := range tags {
			scope.SetTag(key, value)
		}
		for key, value := range extra {
			scope.SetExtra(key, value)
		}
		sentry.CaptureException(err)
	})
}

// Enabled reports whether the last InitSentry call turned reporting on.
func Enabled() bool {
	return sentryEnabled.Load()
}
