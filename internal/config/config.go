// Package config handles the configuration directory, config file and environment.
package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// ConfigFile is the optional config filename inside the config directory.
	ConfigFile = "config.yaml"

	// LogFile is the default log filename inside the config directory.
	LogFile = "tasklist.log"

	// EnvPrefix prefixes environment overrides, e.g. TASKLIST_URL.
	EnvPrefix = "TASKLIST"

	// DefaultBaseURL is where the task service listens unless configured.
	DefaultBaseURL = "http://localhost:8080"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the task service root, without a trailing slash.
	BaseURL string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// LogLevel is a logrus level name.
	LogLevel string

	// LogFormat is "text" or "json".
	LogFormat string

	// LogPath overrides the log file location.
	LogPath string

	// Debug enables debug logging to stderr.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger is set by the dispatcher once the log sink is open.
	Logger logrus.FieldLogger
}

// New creates a Config for the given directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tasklist or $HOME/.config/tasklist.
// Values come from defaults, then config.yaml in that directory, then TASKLIST_* env vars.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetDefault("url", DefaultBaseURL)
	v.SetDefault("timeout", "0s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_file", "")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	// GetDuration swallows parse errors and reads bare numbers as nanoseconds
	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString("timeout")))
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %q", v.GetString("timeout"))
	}

	cfg := &Config{
		Dir:       dir,
		Timeout:   timeout,
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogPath:   v.GetString("log_file"),
	}
	if err := cfg.SetBaseURL(v.GetString("url")); err != nil {
		return nil, err
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout: %s", cfg.Timeout)
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SetBaseURL validates and stores the task service root.
func (c *Config) SetBaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid url: %s", raw)
	}
	c.BaseURL = strings.TrimRight(u.String(), "/")
	return nil
}

// LogFilePath returns where logs are written when not in debug mode.
func (c *Config) LogFilePath() string {
	if c.LogPath != "" {
		return c.LogPath
	}
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Log returns the configured logger, or one that discards everything.
func (c *Config) Log() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
