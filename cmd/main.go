package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	catalogadapter "github.com/restartfu/bottleneck/internal/adapters/catalog"
	hostadapter "github.com/restartfu/bottleneck/internal/adapters/host"
	httpadapter "github.com/restartfu/bottleneck/internal/adapters/http"
	"github.com/restartfu/bottleneck/internal/app"
	"github.com/restartfu/bottleneck/internal/bottleneck"
	"github.com/restartfu/bottleneck/internal/catalog"
	"github.com/restartfu/bottleneck/internal/config"
	"github.com/restartfu/bottleneck/internal/logging"
	"github.com/restartfu/bottleneck/internal/observability"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

// runtimeEnv is what every command needs once flags are parsed.
type runtimeEnv struct {
	cfg     *config.Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	service *app.Service
	flush   func()

	// Swapped out in tests.
	initSentry  func(observability.SentryConfig) (func(), bool, error)
	loadCatalog func() *catalog.Catalog
}

func newRuntimeEnv() *runtimeEnv {
	return &runtimeEnv{
		flush:       func() {},
		initSentry:  observability.InitSentry,
		loadCatalog: catalog.Default,
	}
}

func main() {
	env := newRuntimeEnv()
	if err := execute(env, newRootCmd(env)); err != nil {
		os.Exit(1)
	}
}

// execute runs root and then flushes pending Sentry events, also when the
// command failed.
func execute(env *runtimeEnv, root *cobra.Command) error {
	defer func() { env.flush() }()
	return root.Execute()
}

func newRootCmd(env *runtimeEnv) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "bottleneck",
		Short:         "CPU and GPU bottleneck calculator",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.setup(configPath, cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./bottleneck.yaml or $HOME/.config/bottleneck/bottleneck.yaml)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-format", logging.FormatJSON, "log format: json or console")
	flags.String("tie-break", string(bottleneck.TieBreakGPU), "limiting side reported for equal scores: gpu or balanced")

	root.AddCommand(
		newServeCmd(env),
		newCalcCmd(env),
		newListCmd(env),
		newHostCmd(env),
		newTUICmd(env),
	)
	return root
}

func (env *runtimeEnv) setup(configPath string, cmd *cobra.Command) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	flush, enabled, err := env.initSentry(observability.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	if enabled {
		logger.Debug().Str("environment", cfg.Sentry.Environment).Msg("sentry error reporting enabled")
	}

	cat := env.loadCatalog()
	reader := catalogadapter.NewReader(cat, bottleneck.WithTieBreak(cfg.TieBreak()))
	cpuModels, err := cat.ListModels(catalog.CPUs)
	if err != nil {
		return err
	}

	env.cfg = cfg
	env.logger = logger
	env.catalog = cat
	env.service = app.NewService(reader, reader, hostadapter.NewProbe(cpuModels))
	env.flush = flush
	return nil
}

func newServeCmd(env *runtimeEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), env)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	return cmd
}

func serve(parent context.Context, env *runtimeEnv) error {
	logger := logging.Component(env.logger, "http")
	httpServer := httpadapter.NewServer(env.service, logger)

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		TargetHeader: echo.HeaderXRequestID,
		RequestIDHandler: func(c echo.Context, id string) {
			c.Request().Header.Set(echo.HeaderXRequestID, id)
		},
	}))
	if observability.Enabled() {
		echoServer.Use(sentryecho.New(sentryecho.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}
	echoServer.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","request_id":"${header:X-Request-ID}","remote_ip":"${remote_ip}","host":"${host}","method":"${method}","uri":"${uri}","status":${status},"latency":"${latency_human}","bytes_in":${bytes_in},"bytes_out":${bytes_out},"user_agent":"${user_agent}","error":"${error}"}` + "\n",
	}))
	echoServer.Use(middleware.Recover())
	echoServer.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				observability.CaptureError(err, map[string]string{
					"component": "http",
					"route":     c.Path(),
				}, map[string]interface{}{
					"method": c.Request().Method,
					"uri":    c.Request().RequestURI,
				})
			}
			return err
		}
	})
	httpServer.Register(echoServer)

	server := &http.Server{
		Addr:              env.cfg.HTTP.Addr,
		Handler:           echoServer,
		ReadHeaderTimeout: env.cfg.HTTP.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), env.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", env.cfg.HTTP.Addr).Str("version", version).Msg("bottleneck http server listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
