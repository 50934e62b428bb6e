package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/gateway"
	"github.com/hance08/teller/internal/sandbox"
	"github.com/hance08/teller/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Config  *config.Config
	Logger  *pterm.Logger
	Gateway *gateway.Gateway
}

// NewApp builds the logger and the API gateway from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	logger, err := NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}

	gw := gateway.New(gateway.Config{
		BaseURL:        cfg.API.BaseURL,
		VerboseLogging: cfg.API.Verbose(),
	}, gateway.NewHTTPTransport(nil), logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Gateway: gw,
	}, nil
}

var logLevels = map[string]pterm.LogLevel{
	"trace": pterm.LogLevelTrace,
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// NewLogger returns a structured logger writing to w.
func NewLogger(cfg config.LogConfig, w io.Writer) (*pterm.Logger, error) {
	level, ok := logLevels[strings.ToLower(cfg.Level)]
	if cfg.Level == "" {
		level, ok = pterm.LogLevelInfo, true
	}
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}

	logger := pterm.DefaultLogger.WithLevel(level).WithWriter(w)
	if cfg.JSON {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}
	return logger, nil
}

// NewSandbox opens the sandbox database and returns its API server with a
// cleanup func closing the store.
func NewSandbox(cfg *config.Config, logger *pterm.Logger, migrationFS fs.FS) (*sandbox.Server, func(), error) {
	dbPath, err := SandboxDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Warn("error closing sandbox database", logger.Args("error", err))
		}
	}

	return sandbox.NewServer(dbStore, logger), cleanup, nil
}

// SandboxDBPath is the configured sandbox database, defaulting to a file in
// the app data dir.
func SandboxDBPath(cfg *config.Config) (string, error) {
	if cfg.Sandbox.Database != "" {
		return ExpandPath(cfg.Sandbox.Database)
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, "sandbox.db"), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
