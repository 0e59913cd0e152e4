package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	"dashboard.aifa.mx/internal/app"
	"dashboard.aifa.mx/internal/appconf"
	"dashboard.aifa.mx/internal/dashboard"
	"dashboard.aifa.mx/internal/logging"
	"dashboard.aifa.mx/internal/restapi"
	"dashboard.aifa.mx/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// newLogger logs JSON, except for a human readable text log in development.
func newLogger(cfg appconf.Config) *slog.Logger {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.Env == appconf.Development {
		return logging.NewTextLogger(os.Stdout, level)
	}
	return logging.NewStructuredLogger(os.Stdout, level)
}

// parseConfig reads flags, then lets the environment override them.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (appconf.Config, error) {
	cfg := appconf.Defaults()

	var env, apiKeys, users string

	flags := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.Host, "host", cfg.Host, "Listen host")
	flags.IntVar(&cfg.Port, "port", cfg.Port, "Dashboard server port (PORT overrides)")
	flags.StringVar(&env, "env", "development", "Environment (development|test|production)")
	flags.StringVar(&apiKeys, "api-keys", strings.Join(cfg.ApiKeys, ","), "Comma Separated API Keys (test, etc)")
	flags.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "API requests per second per client (negative disables)")
	flags.BoolVar(&cfg.Simulate, "simulate", cfg.Simulate, "Jitter historical and financial series on a schedule")
	flags.StringVar(&cfg.RefreshSpec, "refresh", "", "Cron spec for the simulation refresh (default @every 30s)")
	flags.StringVar(&users, "users", "", "Comma separated user:password pairs for the methodology tab")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	flags.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Methodology session lifetime")

	if err := flags.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.ApiKeys = appconf.SplitList(apiKeys)

	if users != "" {
		parsed, err := appconf.ParseUsers(users)
		if err != nil {
			return appconf.Config{}, fmt.Errorf("-users: %w", err)
		}
		cfg.Users = parsed
	}

	if err := appconf.ApplyEnvironment(&cfg, getenv); err != nil {
		return appconf.Config{}, err
	}
	return cfg, nil
}

// buildHandler wires the dashboard pages and the JSON API behind the
// middleware chain.
func buildHandler(application *app.Application) (http.Handler, func(), error) {
	d, err := dashboard.New(application.Logger)
	if err != nil {
		return nil, nil, err
	}

	api := restapi.NewRestAPI(application)
	ui := webui.NewWebUI(application, d)

	router := httprouter.New()
	api.SetRoutes(router)
	if err := ui.SetWebUIRoutes(router); err != nil {
		return nil, nil, fmt.Errorf("register web routes: %w", err)
	}
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			api.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
	})

	var handler http.Handler = router
	handler = restapi.CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger)(handler)
	handler = restapi.NewRecoverPanicMiddleware(application.Logger)(handler)

	return handler, api.Stop, nil
}

func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (err error) {
	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer application.Shutdown()

	if application.Credentials.Len() == 0 {
		logger.Warn("no methodology users configured, the tab stays locked",
			slog.String("component", "startup"))
	}

	if err := application.Start(); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	handler, stopAPI, err := buildHandler(application)
	if err != nil {
		return err
	}
	defer stopAPI()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env.String()),
			slog.Bool("simulate", cfg.Simulate))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", slog.String("addr", srv.Addr))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// connections still open after the timeout are closed hard
	defer logging.HandleDeferredError(&err, srv.Close, logger, "server_close")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
