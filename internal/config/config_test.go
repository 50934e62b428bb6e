package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func emptyViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.AddConfigPath(t.TempDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(emptyViper(t), false, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := NewDefault()
	if cfg.API != want.API || cfg.User != want.User || cfg.Log != want.Log || cfg.Sandbox != want.Sandbox {
		t.Fatalf("want defaults %+v, got %+v", want, cfg)
	}
	if !cfg.API.Verbose() {
		t.Fatal("non-production config must be verbose")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "api:\n  base_url: https://bank.example\n  production: true\nuser:\n  id: 42\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TELLER_LOG_LEVEL", "debug")

	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := Load(v, true, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://bank.example" || cfg.API.Verbose() {
		t.Fatalf("file values not applied: %+v", cfg.API)
	}
	if cfg.User.ID != 42 {
		t.Fatalf("want user 42, got %d", cfg.User.ID)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("env override not applied, got level %q", cfg.Log.Level)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("want config path %s, got %s", path, cfg.ConfigPath)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("TELLER_API_BASE_URL=http://dotenv:9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set
	t.Setenv("TELLER_API_BASE_URL", "")
	os.Unsetenv("TELLER_API_BASE_URL")

	cfg, err := Load(emptyViper(t), false, envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://dotenv:9000" {
		t.Fatalf("want base url from .env, got %q", cfg.API.BaseURL)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(v, true); err == nil {
		t.Fatal("want error for missing explicit config file")
	}
}
