package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"validation", ValidationError("x").Build(), 2},
		{"not found", NotFoundError("x").Build(), 4},
		{"config", ConfigError("x").Build(), 7},
		{"network", NetworkError("x").Build(), 8},
		{"content", ContentError("x").Build(), 11},
		{"internal", InternalError("x").Build(), 10},
		{"plain", errors.New("x"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	cfgErr := WrapError(errors.New("no such file"), CategoryConfig, "configuration file not found").Build()
	if got := quiet.FormatError(cfgErr); got != "configuration file not found: no such file" {
		t.Errorf("quiet config format = %q", got)
	}
	if got := verbose.FormatError(cfgErr); !strings.HasPrefix(got, "[config:fatal]") {
		t.Errorf("verbose config format = %q", got)
	}
	if got := quiet.FormatError(InternalError("template missing").Build()); got != "internal: template missing" {
		t.Errorf("quiet internal format = %q", got)
	}
	if got := quiet.FormatError(errors.New("plain")); got != "Error: plain" {
		t.Errorf("plain format = %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var stderr, logs bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.stderr = &stderr
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ValidationError("3 broken links").Build())

	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if strings.TrimSpace(stderr.String()) != "3 broken links" {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if logs.Len() != 0 {
		t.Fatalf("user-facing errors should not be logged in quiet mode, got %q", logs.String())
	}

	stderr.Reset()
	adapter.HandleError(InternalError("boom").Build())
	if code != 10 {
		t.Fatalf("exit code = %d, want 10", code)
	}
	if !strings.Contains(logs.String(), "boom") {
		t.Fatalf("internal errors should be logged, got %q", logs.String())
	}
}
