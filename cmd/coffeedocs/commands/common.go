// Package commands implements the coffeedocs command line.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/coffeedocs/internal/config"
	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
	"git.home.luguber.info/inful/coffeedocs/internal/metrics"
	"git.home.luguber.info/inful/coffeedocs/internal/page"
	"git.home.luguber.info/inful/coffeedocs/internal/shell"
	"git.home.luguber.info/inful/coffeedocs/internal/site"
	"git.home.luguber.info/inful/coffeedocs/internal/version"
)

// Global is shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (built-in defaults when empty)" env:"COFFEEDOCS_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve  ServeCmd  `cmd:"" help:"Serve the documentation site and the admin API"`
	Render RenderCmd `cmd:"" help:"Render one page to stdout"`
	Routes RoutesCmd `cmd:"" help:"List the documentation routes"`
	Check  CheckCmd  `cmd:"" help:"Verify every internal link once"`
	Init   InitCmd   `cmd:"" help:"Write an example configuration file"`
}

// NewParser builds the kong parser for cli.
func NewParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("coffeedocs"),
		kong.Description("Documentation site for the Coffee API Gdl."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	}
	return kong.New(cli, append(base, opts...)...)
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig loads the configuration and reconfigures logging from it.
// --verbose always wins over the configured level.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	level := cfg.Monitoring.Logging.Level.SlogLevel()
	if root.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.Monitoring.Logging.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	g.Logger = slog.New(handler)
	slog.SetDefault(g.Logger)
	return cfg, nil
}

// loadRegistry returns the configured content file, or the built-in registry.
func loadRegistry(cfg *config.Config, logger *slog.Logger) (*content.Registry, error) {
	if cfg.Content.File == "" {
		return content.Default(), nil
	}
	reg, err := content.LoadFile(cfg.Content.File)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded content file", logfields.File(cfg.Content.File))
	return reg, nil
}

// newSite wires the renderer stack for cfg over store.
func newSite(cfg *config.Config, store *content.Store, rec metrics.Recorder, logger *slog.Logger) (*site.Site, error) {
	composer := page.NewComposer(nil, page.Site{
		Name:          cfg.Site.Title,
		SwaggerURL:    cfg.Site.SwaggerURL,
		APIExampleURL: cfg.Site.APIExampleURL,
		StaticPrefix:  site.StaticPrefix,
	})
	return site.New(store, composer,
		site.WithRecorder(rec),
		site.WithLogger(logger),
		site.WithLanguage(cfg.Site.Language),
		site.WithShell(shell.Options{Title: cfg.Site.Title, DrawerWidth: cfg.Site.DrawerWidth}),
	)
}

// recordEntries publishes the registry sizes.
func recordEntries(rec metrics.Recorder, reg *content.Registry) {
	endpoints, fields, menu := reg.Counts()
	rec.SetRegistryEntries("endpoints", endpoints)
	rec.SetRegistryEntries("fields", fields)
	rec.SetRegistryEntries("menu", menu)
}
