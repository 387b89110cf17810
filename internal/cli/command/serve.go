// Package command provides CLI command definitions for gitops-demo.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/gitops-demo/internal/core/service"
	"github.com/yndnr/gitops-demo/internal/infra/buildinfo"
	"github.com/yndnr/gitops-demo/internal/infra/confloader"
	"github.com/yndnr/gitops-demo/internal/infra/shutdown"
	"github.com/yndnr/gitops-demo/internal/server/httpserver"
	"github.com/yndnr/gitops-demo/internal/server/httpserver/handler"
	"github.com/yndnr/gitops-demo/internal/telemetry/logger"
	"github.com/yndnr/gitops-demo/internal/telemetry/metric"
)

// ServeCommand returns the serve command.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP server",
		Flags:  serveFlags(),
		Action: serveAction,
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		setFlag(),
		&cli.BoolFlag{
			Name:  "watch",
			Usage: "Re-apply log.level when the configuration file changes",
		},
	}
}

func serveAction(c *cli.Context) error {
	overrides, err := parseOverrides(c.StringSlice("set"))
	if err != nil {
		return err
	}
	return runServe(c.Context, serveOptions{
		configFile: c.String("config"),
		overrides:  overrides,
		watch:      c.Bool("watch"),
		logOutput:  c.App.Writer,
	})
}

type serveOptions struct {
	configFile string
	overrides  map[string]any
	watch      bool
	logOutput  io.Writer

	// onReady is called with the bound address once the server accepts
	// connections.
	onReady func(addr string)
}

// runServe starts the server and blocks until a signal, ctx cancellation or
// a listener failure.
func runServe(ctx context.Context, opts serveOptions) error {
	cfg, err := loadConfig(opts.configFile, opts.overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: opts.logOutput,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	info := buildinfo.Get()
	log.Info("starting gitops-demo",
		"version", info.Version,
		"commit", info.Commit,
		"config", opts.configFile)

	var metrics *metric.Registry
	if cfg.Metrics.Enabled {
		metrics = metric.NewRegistry()
	}

	greeting := service.NewGreetingService(cfg.GreetingSettings())
	h := handler.New(greeting, metrics, log.Slog())

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Handler:            h,
		Metrics:            metrics,
		Logger:             log,
		RateLimit:          cfg.Server.RateLimit,
		CORSAllowedOrigins: cfg.Server.CORS,
		EnableAudit:        cfg.Server.Audit,
		TrustProxy:         cfg.Server.TrustProxy,
	})

	srv := httpserver.New(cfg.ListenAddr(), router)
	ln, err := srv.Listen()
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr(), err)
	}

	sh := shutdown.NewHandler(cfg.Server.ShutdownTimeout)

	// Hooks run in reverse order: stop advertising readiness, then drain.
	sh.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return srv.Shutdown(ctx)
	})

	if opts.watch && opts.configFile != "" {
		w, err := startWatcher(opts.configFile, opts.overrides, log)
		if err != nil {
			_ = ln.Close()
			return fmt.Errorf("watch config: %w", err)
		}
		sh.OnShutdown(func(context.Context) error {
			return w.Stop()
		})
	}

	sh.OnShutdown(func(context.Context) error {
		h.SetReady(false)
		return nil
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
			serveErr <- err
			sh.Trigger()
		}
	}()

	h.SetReady(true)
	log.Info("HTTP server listening",
		"addr", ln.Addr().String(),
		"application", cfg.Application.Name,
		"port", cfg.Server.Port)
	if opts.onReady != nil {
		opts.onReady(ln.Addr().String())
	}

	if err := sh.Wait(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	default:
	}

	log.Info("server stopped gracefully")
	return nil
}

// startWatcher re-applies log.level whenever the configuration file changes.
// Greeting settings are fixed at startup and are not reloaded.
func startWatcher(path string, overrides map[string]any, log logger.Logger) (*confloader.Watcher, error) {
	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log.Slog()))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return nil, err
	}

	w.OnChange(func(changed string) {
		cfg, err := loadConfig(changed, overrides)
		if err != nil {
			log.Warn("ignoring invalid configuration change", "file", changed, "error", err)
			return
		}
		level := logger.NormalizeLevel(cfg.Log.Level)
		if level == logger.GetLevel() {
			return
		}
		logger.SetLevel(level)
		log.Info("log level changed", "level", level)
	})

	w.StartAsync()
	return w, nil
}
