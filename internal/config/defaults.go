package config

import (
	"time"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

const (
	DefaultTitle         = "Coffee API Gdl"
	DefaultLanguage      = "en"
	DefaultDrawerWidth   = 240
	DefaultSwaggerURL    = "/api/v1/swagger/"
	DefaultAPIExampleURL = "/api/v1/cafes"
	DefaultDocsPort      = 8080
	DefaultAdminPort     = 8081
	DefaultSubject       = "coffeedocs.linkcheck"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier fills site presentation defaults.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	s := &cfg.Site
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.DrawerWidth == 0 {
		s.DrawerWidth = DefaultDrawerWidth
	}
	if s.SwaggerURL == "" {
		s.SwaggerURL = DefaultSwaggerURL
	}
	if s.APIExampleURL == "" {
		s.APIExampleURL = DefaultAPIExampleURL
	}
	return nil
}

// HTTPDefaultApplier fills ports and timeouts.
type HTTPDefaultApplier struct{}

func (HTTPDefaultApplier) Domain() string { return "http" }

func (HTTPDefaultApplier) ApplyDefaults(cfg *Config) error {
	h := &cfg.HTTP
	if h.DocsPort == 0 {
		h.DocsPort = DefaultDocsPort
	}
	if h.AdminPort == 0 {
		h.AdminPort = DefaultAdminPort
	}
	if h.ReadTimeout == 0 {
		h.ReadTimeout = 30 * time.Second
	}
	if h.WriteTimeout == 0 {
		h.WriteTimeout = 30 * time.Second
	}
	if h.IdleTimeout == 0 {
		h.IdleTimeout = 120 * time.Second
	}
	if h.ShutdownTimeout == 0 {
		h.ShutdownTimeout = 10 * time.Second
	}
	return nil
}

// MonitoringDefaultApplier fills endpoint paths and logging.
type MonitoringDefaultApplier struct{}

func (MonitoringDefaultApplier) Domain() string { return "monitoring" }

func (MonitoringDefaultApplier) ApplyDefaults(cfg *Config) error {
	m := &cfg.Monitoring
	if m.Metrics.Path == "" {
		m.Metrics.Path = "/metrics"
	}
	if m.Health.Path == "" {
		m.Health.Path = "/health"
	}
	m.Logging.Level = NormalizeLogLevel(string(m.Logging.Level))
	m.Logging.Format = NormalizeLogFormat(string(m.Logging.Format))
	return nil
}

// ContentDefaultApplier fills the reload debounce.
type ContentDefaultApplier struct{}

func (ContentDefaultApplier) Domain() string { return "content" }

func (ContentDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Content.Debounce == 0 {
		cfg.Content.Debounce = 250 * time.Millisecond
	}
	return nil
}

// LinkCheckDefaultApplier fills the schedule, subject and connect backoff.
type LinkCheckDefaultApplier struct{}

func (LinkCheckDefaultApplier) Domain() string { return "link_check" }

func (LinkCheckDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.LinkCheck.Interval == 0 {
		cfg.LinkCheck.Interval = time.Hour
	}
	if cfg.LinkCheck.Subject == "" {
		cfg.LinkCheck.Subject = DefaultSubject
	}
	r := &cfg.LinkCheck.Retry
	if r.Backoff == "" {
		r.Backoff = RetryBackoffExponential
	}
	if r.Initial == 0 {
		r.Initial = 500 * time.Millisecond
	}
	if r.Max == 0 {
		r.Max = 10 * time.Second
	}
	return nil
}

// DefaultApplierRegistry runs appliers in registration order.
type DefaultApplierRegistry struct {
	appliers []DefaultApplier
}

// NewDefaultApplier returns the registry with every domain applier.
func NewDefaultApplier() *DefaultApplierRegistry {
	return &DefaultApplierRegistry{appliers: []DefaultApplier{
		SiteDefaultApplier{},
		HTTPDefaultApplier{},
		MonitoringDefaultApplier{},
		ContentDefaultApplier{},
		LinkCheckDefaultApplier{},
	}}
}

// ApplyDefaults applies every domain in order.
func (r *DefaultApplierRegistry) ApplyDefaults(cfg *Config) error {
	for _, a := range r.appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "failed to apply defaults").
				WithContext("domain", a.Domain()).
				Build()
		}
	}
	return nil
}

func applyDefaults(cfg *Config) error {
	return NewDefaultApplier().ApplyDefaults(cfg)
}
