package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/teller/internal/config"
)

func TestNewLogger(t *testing.T) {
	tt := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"debug", false},
		{"WARN", false},
		{"trace", false},
		{"verbose", true},
	}

	for _, tc := range tt {
		_, err := NewLogger(config.LogConfig{Level: tc.level}, &bytes.Buffer{})
		if (err != nil) != tc.wantErr {
			t.Errorf("level %q: err = %v, wantErr %v", tc.level, err, tc.wantErr)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogConfig{Level: "info", JSON: true}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hello", logger.Args("user", 7))
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestNewLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogConfig{Level: "error"}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at error level: %q", buf.String())
	}
}

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.API.BaseURL = "http://bank.test"

	a, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Gateway.BaseURL() != "http://bank.test" {
		t.Errorf("BaseURL = %q", a.Gateway.BaseURL())
	}
}

func TestSandboxDBPath(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Sandbox.Database = "/tmp/bank.db"
	if got, _ := SandboxDBPath(cfg); got != "/tmp/bank.db" {
		t.Errorf("explicit path = %q", got)
	}

	cfg.Sandbox.Database = "~/bank.db"
	home, _ := os.UserHomeDir()
	if got, _ := SandboxDBPath(cfg); got != filepath.Join(home, "bank.db") {
		t.Errorf("expanded path = %q", got)
	}

	cfg.Sandbox.Database = ""
	got, err := SandboxDBPath(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "sandbox.db" {
		t.Errorf("default path = %q", got)
	}
}

func TestNewSandbox(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Sandbox.Database = filepath.Join(t.TempDir(), "sandbox.db")
	logger, _ := NewLogger(cfg.Log, &bytes.Buffer{})

	srv, cleanup, err := NewSandbox(cfg, logger, os.DirFS("../.."))
	if err != nil {
		t.Fatalf("NewSandbox: %v", err)
	}
	defer cleanup()

	if srv.Handler() == nil {
		t.Error("nil handler")
	}
}
