package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genricoloni/mprisence/internal/config"
	"github.com/genricoloni/mprisence/internal/discord"
	"github.com/genricoloni/mprisence/internal/domain"
	"github.com/genricoloni/mprisence/internal/engine"
	"github.com/genricoloni/mprisence/internal/metrics"
	"github.com/genricoloni/mprisence/internal/monitor"
	"github.com/genricoloni/mprisence/internal/presence"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const stopTimeout = 10 * time.Second

var (
	envFile  string
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:          "mprisence",
	Short:        "Show the track playing in your MPRIS player as Discord Rich Presence",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "filter config file (overrides MPRISENCE_CONFIG)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error), overrides LOG_LEVEL")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// AppOptions wires the daemon. It expects a config.Env to be supplied.
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		provideLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		fx.Annotate(monitor.NewMprisSource, fx.As(new(domain.PropertySource))),
		fx.Annotate(discord.NewSink, fx.As(new(domain.PresenceSink))),
		metrics.NewMetrics,
		newRecorder,
		newSelector,
		newRenderer,
		newMetricsServer,
		engine.NewEngine,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func run(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if cfgPath != "" {
		env.ConfigPath = cfgPath
	}
	if logLevel != "" {
		env.LogLevel = logLevel
	}

	app := fx.New(
		fx.Supply(env),
		AppOptions,
	)
	if err := app.Err(); err != nil {
		return err
	}

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}

// newLogger creates a production zap logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg.Level = lvl
	return cfg.Build()
}

func provideLogger(env config.Env) (*zap.Logger, error) {
	return newLogger(env.LogLevel)
}

func newRecorder(m *metrics.Metrics) engine.Recorder {
	return m
}

func newSelector(logger *zap.Logger, source domain.PropertySource, cfg domain.Config, m *metrics.Metrics) *presence.Selector {
	return presence.NewSelector(logger, source, presence.NewFilter(cfg.GetFilter()), m)
}

func newRenderer(logger *zap.Logger, cfg domain.Config) *presence.Renderer {
	return presence.NewRenderer(logger, cfg.GetFilter().EmboldenTitles, presence.Assets{
		LargeImage: cfg.GetLargeImage(),
		LargeText:  cfg.GetLargeText(),
	})
}

// newMetricsServer returns nil when no metrics address is configured
func newMetricsServer(logger *zap.Logger, cfg domain.Config, m *metrics.Metrics) engine.Service {
	addr := cfg.GetMetricsAddr()
	if addr == "" {
		return nil
	}
	return metrics.NewServer(logger, addr, m)
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, eng *engine.Engine, source domain.PropertySource) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("mprisence started")
			return eng.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			err := eng.Stop(ctx)
			if closer, ok := source.(io.Closer); ok {
				if cerr := closer.Close(); cerr != nil {
					logger.Warn("Failed to close D-Bus connection", zap.Error(cerr))
				}
			}
			return err
		},
	})
}
