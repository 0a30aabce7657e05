package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/coffeedocs/internal/config"
	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/linkverify"
	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/retry"
	"git.home.luguber.info/inful/coffeedocs/internal/server/httpserver"
	"git.home.luguber.info/inful/coffeedocs/internal/site"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Watch bool `help:"Reload the content file when it changes (overrides content.watch)"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if s.Watch {
		cfg.Content.Watch = true
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunServe(ctx, cfg, g.Logger)
}

// runtime backs the admin monitoring endpoints.
type runtime struct {
	start time.Time
	store *content.Store
	stats *metrics.Stats
}

func (r *runtime) GetStartTime() time.Time         { return r.start }
func (r *runtime) Snapshot() metrics.StatsSnapshot { return r.stats.Snapshot() }

func (r *runtime) ContentCounts() (endpoints, fields, menuEntries int) {
	return r.store.Load().Counts()
}

func (r *runtime) Ready() string {
	if r.store.Load() == nil {
		return "content registry not loaded"
	}
	return ""
}

// RunServe serves until ctx is canceled.
func RunServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	stats := metrics.NewStats()
	promReg := prometheus.NewRegistry()
	rec := metrics.Multi(stats, metrics.NewPrometheusRecorder(promReg))

	reg, err := loadRegistry(cfg, logger)
	if err != nil {
		return err
	}
	store := content.NewStore(reg)
	recordEntries(rec, reg)

	docs, err := newSite(cfg, store, rec, logger)
	if err != nil {
		return err
	}

	if cfg.Content.Watch {
		w, err := content.NewWatcher(cfg.Content.File, store, cfg.Content.Debounce, func(reg *content.Registry, err error) {
			rec.IncContentReload(err == nil)
			if err != nil {
				logger.Error("Content reload failed, keeping previous registry",
					logfields.File(cfg.Content.File), logfields.Error(err))
				return
			}
			recordEntries(rec, reg)
			logger.Info("Content reloaded", logfields.File(cfg.Content.File))
		})
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()
	}

	var checker *linkverify.Scheduler
	if cfg.LinkCheck.Enabled {
		checker, err = newLinkChecker(ctx, cfg, docs, rec, logger)
		if err != nil {
			return err
		}
		if _, err := checker.Schedule(cfg.LinkCheck.Interval); err != nil {
			return err
		}
		checker.Start()
		defer func() { _ = checker.Stop() }()
		checker.Trigger()
	}

	opts := httpserver.Options{
		Docs:     docs,
		Runtime:  &runtime{start: time.Now(), store: store, stats: stats},
		Recorder: rec,
		Logger:   logger,
	}
	if cfg.Monitoring.Metrics.Enabled {
		opts.PrometheusHandler = metrics.HTTPHandler(promReg)
	}
	if checker != nil {
		opts.LinkChecker = checker
	}

	srv := httpserver.New(cfg, opts)
	if err := srv.Start(ctx); err != nil {
		return err
	}
	logger.Info("Serving documentation",
		logfields.URL("http://"+srv.DocsAddr().String()),
		logfields.Server("docs"))

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping servers")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stopCancel()
	return srv.Stop(stopCtx)
}

// newLinkChecker builds the scheduler, publishing to NATS when configured.
// An unreachable NATS server degrades to logging only.
func newLinkChecker(ctx context.Context, cfg *config.Config, docs *site.Site, rec metrics.Recorder, logger *slog.Logger) (*linkverify.Scheduler, error) {
	svc := linkverify.NewVerificationService(docs, linkverify.Options{
		Assets: site.StaticPaths(),
		Logger: logger,
	})
	var pub linkverify.Publisher
	if cfg.LinkCheck.NATSURL != "" {
		client, err := connectNATS(ctx, cfg, logger)
		if err != nil {
			logger.Warn("NATS unavailable, broken links will only be logged",
				logfields.URL(cfg.LinkCheck.NATSURL), logfields.Error(err))
		} else {
			pub = client
		}
	}
	return linkverify.NewScheduler(svc, pub, rec)
}

// connectNATS dials NATS with the configured backoff.
func connectNATS(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*linkverify.NATSClient, error) {
	var client *linkverify.NATSClient
	err := retry.Do(ctx, retry.FromConfig(cfg.LinkCheck.Retry), func(attempt int) error {
		if attempt > 0 {
			logger.Debug("Retrying NATS connection", logfields.URL(cfg.LinkCheck.NATSURL), slog.Int("attempt", attempt))
		}
		var err error
		client, err = linkverify.NewNATSClient(cfg.LinkCheck.NATSURL, cfg.LinkCheck.Subject)
		return err
	})
	return client, err
}
