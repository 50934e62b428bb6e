package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "TELLER"

type Config struct {
	API        APIConfig     `mapstructure:"api"`
	User       UserConfig    `mapstructure:"user"`
	Log        LogConfig     `mapstructure:"log"`
	Sandbox    SandboxConfig `mapstructure:"sandbox"`
	ConfigPath string        `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Production bool   `mapstructure:"production"`
}

// Verbose reports whether response bodies should be logged.
func (c APIConfig) Verbose() bool {
	return !c.Production
}

type UserConfig struct {
	ID int64 `mapstructure:"id"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type SandboxConfig struct {
	Listen   string `mapstructure:"listen"`
	Database string `mapstructure:"database"`
}

func NewDefault() *Config {
	return &Config{
		API:     APIConfig{BaseURL: "http://localhost:5000", Production: false},
		User:    UserConfig{ID: 1},
		Log:     LogConfig{Level: "info", JSON: false},
		Sandbox: SandboxConfig{Listen: ":5000", Database: ""},
	}
}

// SetDefaults registers every key so that environment overrides are seen by
// Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := NewDefault()
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.production", d.API.Production)
	v.SetDefault("user.id", d.User.ID)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("sandbox.listen", d.Sandbox.Listen)
	v.SetDefault("sandbox.database", d.Sandbox.Database)
}

// Load reads the config file already set on v, with .env and TELLER_*
// environment variables taking precedence. A missing config file is not an
// error unless explicit is true.
func Load(v *viper.Viper, explicit bool, dotenv ...string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load(dotenv...)

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}
