package config

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

const maxDrawerWidth = 1024

// Validate checks a defaulted configuration and returns the first problem
// as a classified config error.
func Validate(cfg *Config) error {
	v := configurationValidator{cfg: cfg}
	for _, step := range []func() error{
		v.validateSite,
		v.validateHTTP,
		v.validateMonitoring,
		v.validateContent,
		v.validateLinkCheck,
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

type configurationValidator struct {
	cfg *Config
}

func invalid(msg string, kv ...any) error {
	b := errors.ConfigError(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		b = b.WithContext(key, kv[i+1])
	}
	return b.Build()
}

func (v configurationValidator) validateSite() error {
	s := v.cfg.Site
	if strings.TrimSpace(s.Title) == "" {
		return invalid("site title cannot be empty")
	}
	if _, err := language.Parse(s.Language); err != nil {
		return invalid("invalid site language", "language", s.Language, "error", err.Error())
	}
	if s.DrawerWidth < 0 || s.DrawerWidth > maxDrawerWidth {
		return invalid("drawer width out of range", "drawer_width", s.DrawerWidth, "max", maxDrawerWidth)
	}
	for field, raw := range map[string]string{"swagger_url": s.SwaggerURL, "api_example_url": s.APIExampleURL} {
		if _, err := url.Parse(raw); err != nil {
			return invalid("invalid site url", "field", field, "value", raw)
		}
	}
	return nil
}

func (v configurationValidator) validateHTTP() error {
	h := v.cfg.HTTP
	for name, port := range map[string]int{"docs_port": h.DocsPort, "admin_port": h.AdminPort} {
		if port < 1 || port > 65535 {
			return invalid("port out of range", "field", name, "port", port)
		}
	}
	if h.DocsPort == h.AdminPort {
		return invalid("docs and admin ports must differ", "port", h.DocsPort)
	}
	for name, d := range map[string]time.Duration{
		"read_timeout":     h.ReadTimeout,
		"write_timeout":    h.WriteTimeout,
		"idle_timeout":     h.IdleTimeout,
		"shutdown_timeout": h.ShutdownTimeout,
	} {
		if d < 0 {
			return invalid("timeout cannot be negative", "field", name)
		}
	}
	return nil
}

func (v configurationValidator) validateMonitoring() error {
	m := v.cfg.Monitoring
	if !strings.HasPrefix(m.Metrics.Path, "/") {
		return invalid("metrics path must start with /", "path", m.Metrics.Path)
	}
	if !strings.HasPrefix(m.Health.Path, "/") {
		return invalid("health path must start with /", "path", m.Health.Path)
	}
	return nil
}

func (v configurationValidator) validateContent() error {
	c := v.cfg.Content
	if c.Watch && c.File == "" {
		return invalid("content watch requires content file")
	}
	if c.Debounce < 0 {
		return invalid("content debounce cannot be negative")
	}
	return nil
}

func (v configurationValidator) validateLinkCheck() error {
	lc := v.cfg.LinkCheck
	if lc.Enabled && lc.Interval < time.Second {
		return invalid("link check interval must be at least 1s", "interval", lc.Interval.String())
	}
	if lc.NATSURL != "" {
		if _, err := url.Parse(lc.NATSURL); err != nil {
			return invalid("invalid nats url", "nats_url", lc.NATSURL)
		}
		if strings.TrimSpace(lc.Subject) == "" {
			return invalid("link check subject cannot be empty")
		}
	}
	switch lc.Retry.Backoff {
	case RetryBackoffFixed, RetryBackoffLinear, RetryBackoffExponential:
	default:
		return invalid("unknown retry backoff", "backoff", string(lc.Retry.Backoff))
	}
	if lc.Retry.MaxRetries < 0 || lc.Retry.Initial < 0 || lc.Retry.Max < 0 {
		return invalid("retry settings cannot be negative")
	}
	return nil
}
