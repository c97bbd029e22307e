// Package config loads bbpie settings from a config directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/bbpie/internal/fetch"
)

const (
	DefaultDir        = ".bbpie"
	DefaultConfigFile = "config.yaml"
	DefaultEnvFile    = ".env"
	DefaultBaseURL    = fetch.DefaultBaseURL
	DefaultTokenEnv   = "BBPIE_TOKEN"
	DefaultUserAgent  = fetch.DefaultUserAgent
	DefaultTimeout    = fetch.DefaultTimeout
	DefaultFormat     = "html"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Formats lists the accepted embed.format values.
var Formats = []string{"html", "oembed", "info"}

// boxClass is the only extra_css key the renderer reads.
const boxClass = "bbpBox"

// Duration wraps time.Duration for YAML unmarshaling from strings like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

type Config struct {
	API     APIConfig     `yaml:"api"`
	Embed   EmbedConfig   `yaml:"embed"`
	Privacy PrivacyConfig `yaml:"privacy"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL   string   `yaml:"base_url"`
	TokenEnv  string   `yaml:"token_env"`
	UserAgent string   `yaml:"user_agent"`
	Timeout   Duration `yaml:"timeout"`

	// Resolved from env var at load time.
	Token string `yaml:"-"`
}

type EmbedConfig struct {
	ExtraCSS map[string]string `yaml:"extra_css"`
	Sanitize bool              `yaml:"sanitize"`
	Format   string            `yaml:"format"`
}

type PrivacyConfig struct {
	Redact RedactConfig `yaml:"redact"`
}

type RedactConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Patterns []string `yaml:"patterns"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel returns the configured level. Call after Load has validated it.
func (c LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(c.Level))
	return lvl
}

// Default returns a validated config with every default applied.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	resolveEnv(&cfg)
	return &cfg
}

// Load reads config.yaml from dir, applies defaults, resolves env vars, and validates.
// A missing config.yaml yields the defaults. A .env file in dir is loaded first;
// variables already set in the environment win.
func Load(dir string) (*Config, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("config dir is required")
	}

	if err := loadEnvFile(filepath.Join(dir, DefaultEnvFile)); err != nil {
		return nil, err
	}

	var cfg Config
	path := filepath.Join(dir, DefaultConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyDefaults(&cfg)
	resolveEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.TokenEnv == "" {
		cfg.API.TokenEnv = DefaultTokenEnv
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = DefaultUserAgent
	}
	if cfg.API.Timeout.Duration == 0 {
		cfg.API.Timeout.Duration = DefaultTimeout
	}
	if cfg.Embed.Format == "" {
		cfg.Embed.Format = DefaultFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

func resolveEnv(cfg *Config) {
	if cfg.API.TokenEnv != "" {
		cfg.API.Token = os.Getenv(cfg.API.TokenEnv)
	}
}

func validate(cfg *Config) error {
	u, err := url.ParseRequestURI(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url: unsupported scheme %q", u.Scheme)
	}

	if cfg.API.Timeout.Duration < 0 {
		return fmt.Errorf("api.timeout: must be positive, got %s", cfg.API.Timeout.Duration)
	}

	if !slices.Contains(Formats, cfg.Embed.Format) {
		return fmt.Errorf("embed.format: unknown format %q (want %s)", cfg.Embed.Format, strings.Join(Formats, ", "))
	}

	for key := range cfg.Embed.ExtraCSS {
		if key != boxClass {
			return fmt.Errorf("embed.extra_css: unknown key %q (only %s is supported)", key, boxClass)
		}
	}

	if cfg.Privacy.Redact.Enabled && len(cfg.Privacy.Redact.Patterns) == 0 {
		return errors.New("privacy.redact: enabled without patterns")
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch cfg.Log.Format {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("log.format: unknown format %q (want text or json)", cfg.Log.Format)
	}

	return nil
}
