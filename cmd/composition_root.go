package cmd

import (
	"fmt"
	"io"
	"time"

	"pizzaorder/internal/adapters/in/console"
	"pizzaorder/internal/adapters/out/dominos"
	"pizzaorder/internal/core/application/usecases/commands"
	"pizzaorder/internal/core/application/usecases/queries"
	"pizzaorder/internal/jobs"
	"pizzaorder/internal/pkg/logger"
)

// CompositionRoot owns the adapters of one process and hands out handlers
// wired to them.
type CompositionRoot struct {
	log     logger.Logger
	api     *dominos.Client
	console *console.Console
}

// NewCompositionRoot builds the remote client and a console on in/out.
func NewCompositionRoot(cfg Config, log logger.Logger, in io.Reader, out io.Writer) (CompositionRoot, error) {
	api, err := dominos.NewClient(dominos.Config{
		BaseURL:        cfg.PizzaAPI.BaseURL,
		ConnectTimeout: cfg.PizzaAPI.ConnectTimeout,
		ReadTimeout:    cfg.PizzaAPI.ReadTimeout,
		UserAgent:      cfg.PizzaAPI.UserAgent,
	}, log)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("pizza api client: %w", err)
	}

	return CompositionRoot{
		log:     log,
		api:     api,
		console: console.New(in, out),
	}, nil
}

// NewLogger builds the session logger described by cfg, tagged with sessionID.
func NewLogger(cfg Config, sessionID string) (*logger.ZapLogger, error) {
	level, err := logger.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, err
	}

	return logger.New(cfg.Logger.Filename,
		logger.SetLevel(level),
		logger.MaxSize(cfg.Logger.MaxSize),
		logger.MaxBackups(cfg.Logger.MaxBackups),
		logger.MaxAge(cfg.Logger.MaxAge),
		logger.WithConsole(cfg.Logger.Console),
		logger.WithFields("session_id", sessionID, "env", cfg.Env),
	)
}

func (c *CompositionRoot) Console() *console.Console {
	return c.console
}

func (c *CompositionRoot) Logger() logger.Logger {
	return c.log
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.api, c.console, c.log)
}

func (c *CompositionRoot) CreateTrackOrdersQueryHandler() queries.TrackOrdersQueryHandler {
	return queries.NewTrackOrdersQueryHandler(c.api)
}

func (c *CompositionRoot) CreateTrackerWatchJob(query queries.TrackOrdersQuery, interval time.Duration) *jobs.TrackerWatchJob {
	return jobs.NewTrackerWatchJob(c.CreateTrackOrdersQueryHandler(), query, c.console, interval, c.log)
}
