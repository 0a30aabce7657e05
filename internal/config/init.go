package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

// Example returns the configuration written by Init.
func Example() *Config {
	return &Config{
		Version: CurrentVersion,
		Site: SiteConfig{
			Title:         DefaultTitle,
			Language:      DefaultLanguage,
			DrawerWidth:   DefaultDrawerWidth,
			SwaggerURL:    DefaultSwaggerURL,
			APIExampleURL: DefaultAPIExampleURL,
		},
		HTTP: HTTPConfig{
			DocsPort:        DefaultDocsPort,
			AdminPort:       DefaultAdminPort,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Monitoring: MonitoringConfig{
			Metrics: MonitoringMetrics{Enabled: true, Path: "/metrics"},
			Health:  MonitoringHealth{Path: "/health"},
			Logging: MonitoringLogging{Level: LogLevelInfo, Format: LogFormatText},
		},
		Content: ContentConfig{
			Debounce: 250 * time.Millisecond,
		},
		LinkCheck: LinkCheckConfig{
			Enabled:  true,
			Interval: time.Hour,
			NATSURL:  "${COFFEEDOCS_NATS_URL}",
			Subject:  DefaultSubject,
			Retry: RetryConfig{
				Backoff:    RetryBackoffExponential,
				Initial:    500 * time.Millisecond,
				Max:        10 * time.Second,
				MaxRetries: 3,
			},
		},
	}
}

// Init writes an example configuration file. A non-empty contentFile is
// recorded as the content registry override.
func Init(path string, force bool, contentFile string) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}
	cfg := Example()
	cfg.Content.File = contentFile
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}
