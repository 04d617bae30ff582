// Package config loads service configuration from a YAML file with
// environment variable overrides. A .env file is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultServerPort   = 8060
	defaultServerHost   = "0.0.0.0"
	defaultHTTPTimeout  = 30 * time.Second
	defaultFetchTimeout = 15 * time.Second

	// defaultUserAgent mirrors a desktop browser; several platforms serve
	// reduced pages to unknown clients.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:136.0) Gecko/20100101 Firefox/136.0"

	// defaultZDFToken is the documented workaround for pages that no longer
	// embed an apiToken. Its continued validity depends on zdf.de behavior.
	defaultZDFToken = "ahBaeMeekaiy5ohsai4bee4ki6Oopoi5quailieb"
)

// Config is the root service configuration.
type Config struct {
	Debug   bool          `env:"APP_DEBUG"  yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Fetch   FetchConfig   `yaml:"fetch"`
	YouTube YouTubeConfig `yaml:"youtube"`
	ZDF     ZDFConfig     `yaml:"zdf"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST"  yaml:"host"`
	Port         int           `env:"SERVER_PORT"  yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" yaml:"cors_origins"`
}

// FetchConfig holds settings for outbound platform requests.
type FetchConfig struct {
	Timeout   time.Duration `env:"FETCH_TIMEOUT" yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// YouTubeConfig holds YouTube Data API settings.
type YouTubeConfig struct {
	APIKey string `env:"YT_KEY" yaml:"api_key"`
}

// ZDFConfig holds ZDF GraphQL settings.
type ZDFConfig struct {
	FallbackToken string `env:"ZDF_FALLBACK_TOKEN" yaml:"fallback_token"`
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port <= 0 {
		return errors.New("server.port is required and must be positive")
	}
	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch.timeout must be positive")
	}
	return nil
}

// Load reads the config file at path, applies defaults and env overrides,
// and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	setDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultHTTPTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultHTTPTimeout
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = defaultFetchTimeout
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = defaultUserAgent
	}
	if cfg.ZDF.FallbackToken == "" {
		cfg.ZDF.FallbackToken = defaultZDFToken
	}
}
