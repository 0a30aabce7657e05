package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	require.Equal(t, CurrentVersion, cfg.Version)
	require.Equal(t, "Coffee API Gdl", cfg.Site.Title)
	require.Equal(t, 240, cfg.Site.DrawerWidth)
	require.Equal(t, "/api/v1/swagger/", cfg.Site.SwaggerURL)
	require.Equal(t, 8080, cfg.HTTP.DocsPort)
	require.Equal(t, 8081, cfg.HTTP.AdminPort)
	require.Equal(t, "/metrics", cfg.Monitoring.Metrics.Path)
	require.Equal(t, "/health", cfg.Monitoring.Health.Path)
	require.Equal(t, LogLevelInfo, cfg.Monitoring.Logging.Level)
	require.Equal(t, LogFormatText, cfg.Monitoring.Logging.Format)
	require.Equal(t, time.Hour, cfg.LinkCheck.Interval)
	require.Equal(t, DefaultSubject, cfg.LinkCheck.Subject)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultDocsPort, cfg.HTTP.DocsPort)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("missing.yaml")
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestParseOverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("COFFEEDOCS_TEST_PORT", "9090")
	cfg, err := Parse([]byte(`
version: "1.0"
site:
  title: Coffee Docs
  language: es-MX
  drawer_width: 300
http:
  docs_port: ${COFFEEDOCS_TEST_PORT}
  read_timeout: 5s
monitoring:
  logging:
    level: DEBUG
    format: json
link_check:
  enabled: true
  interval: 10m
`))
	require.NoError(t, err)
	require.Equal(t, "Coffee Docs", cfg.Site.Title)
	require.Equal(t, "es-MX", cfg.Site.Language)
	require.Equal(t, 300, cfg.Site.DrawerWidth)
	require.Equal(t, 9090, cfg.HTTP.DocsPort)
	require.Equal(t, DefaultAdminPort, cfg.HTTP.AdminPort)
	require.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, LogLevelDebug, cfg.Monitoring.Logging.Level)
	require.Equal(t, LogFormatJSON, cfg.Monitoring.Logging.Format)
	require.Equal(t, 10*time.Minute, cfg.LinkCheck.Interval)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "site:\n  colour: blue\n"},
		{"wrong version", "version: \"2.0\"\n"},
		{"bad language", "site:\n  language: \"not a tag!\"\n"},
		{"drawer too wide", "site:\n  drawer_width: 5000\n"},
		{"same ports", "http:\n  docs_port: 9000\n  admin_port: 9000\n"},
		{"port range", "http:\n  docs_port: 70000\n"},
		{"metrics path", "monitoring:\n  metrics:\n    path: metrics\n"},
		{"watch without file", "content:\n  watch: true\n"},
		{"short interval", "link_check:\n  enabled: true\n  interval: 10ms\n"},
		{"retry backoff", "link_check:\n  retry:\n    backoff: random\n"},
		{"negative retries", "link_check:\n  retry:\n    max_retries: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			require.True(t, errors.HasCategory(err, errors.CategoryConfig), err)
		})
	}
}

func TestEnvFilesDoNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("COFFEEDOCS_TEST_TITLE=from-file\nCOFFEEDOCS_TEST_OTHER=other\n"), 0o600))
	t.Setenv("COFFEEDOCS_TEST_TITLE", "from-env")
	t.Setenv("COFFEEDOCS_TEST_OTHER", "")
	require.NoError(t, os.Unsetenv("COFFEEDOCS_TEST_OTHER"))

	loaded, err := loadEnvFiles()
	require.NoError(t, err)
	require.Equal(t, []string{".env"}, loaded)
	require.Equal(t, "from-env", os.Getenv("COFFEEDOCS_TEST_TITLE"))
	require.Equal(t, "other", os.Getenv("COFFEEDOCS_TEST_OTHER"))
}

func TestInitWritesLoadableConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "coffeedocs.yaml")

	require.NoError(t, Init(path, false, ""))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Example().Site, cfg.Site)
	require.True(t, cfg.LinkCheck.Enabled)

	err = Init(path, false, "")
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
	require.NoError(t, Init(path, true, ""))

	require.NoError(t, Init(path, true, "content.yaml"))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "content.yaml", cfg.Content.File)
}

func TestLogLevelSlog(t *testing.T) {
	require.Equal(t, LogLevelWarn, NormalizeLogLevel("Warning"))
	require.Equal(t, LogLevelInfo, NormalizeLogLevel("verbose"))
	require.Equal(t, "DEBUG", LogLevelDebug.SlogLevel().String())
	require.Equal(t, "ERROR", LogLevelError.SlogLevel().String())
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultTitle, cfg.Site.Title)
}
