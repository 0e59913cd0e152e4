package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"dashboard.aifa.mx/internal/appconf"
	"dashboard.aifa.mx/internal/data"
	"dashboard.aifa.mx/internal/logging"
)

// sessionSweepSpec is how often expired methodology sessions are dropped.
const sessionSweepSpec = "@every 10m"

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config      appconf.Config
	Logger      *slog.Logger
	Store       *data.Store
	Credentials *Credentials
	Sessions    *SessionStore
	StartedAt   time.Time

	scheduler *cron.Cron
}

// Theme is the visual configuration handed to every page.
type Theme struct {
	Name       string
	Accent     string
	Background string
	Viewport   string
}

// DefaultTheme is the dark glassmorphism theme of the operations center.
var DefaultTheme = Theme{
	Name:       "dark",
	Accent:     "#00d4ff",
	Background: "#0a0e27",
	Viewport:   "width=device-width, initial-scale=1.0",
}

// New wires an Application from config. The store is not started.
func New(cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	credentials, err := NewCredentials(cfg.Users, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	store := data.NewStore(data.Config{
		Simulate:    cfg.Simulate,
		RefreshSpec: cfg.RefreshSpec,
	}, logger)

	return &Application{
		Config:      cfg,
		Logger:      logger,
		Store:       store,
		Credentials: credentials,
		Sessions:    NewSessionStore(cfg.SessionTTL),
		StartedAt:   time.Now(),
	}, nil
}

// Start begins the store refreshes and the periodic session sweep.
func (app *Application) Start() error {
	if err := app.Store.Start(); err != nil {
		return fmt.Errorf("start data store: %w", err)
	}

	app.scheduler = cron.New()
	if _, err := app.scheduler.AddFunc(sessionSweepSpec, app.sweepSessions); err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}
	app.scheduler.Start()
	return nil
}

func (app *Application) sweepSessions() {
	if app.Sessions == nil {
		return
	}
	if removed := app.Sessions.Sweep(); removed > 0 {
		logging.LogOperation(app.Logger, "sessions_swept",
			slog.String("component", "sessions"),
			slog.Int("removed", removed))
	}
}

// Shutdown stops background work.
func (app *Application) Shutdown() {
	if app.scheduler != nil {
		<-app.scheduler.Stop().Done()
	}
	if app.Store != nil {
		app.Store.Shutdown()
	}
}
