// Package config loads and validates grabber configuration via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config captures all grabber configuration knobs loaded via Viper.
type Config struct {
	Run     RunConfig     `mapstructure:"run"`
	Crawl   CrawlConfig   `mapstructure:"crawl"`
	Ops     OpsConfig     `mapstructure:"ops"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RunConfig identifies one grab run.
type RunConfig struct {
	Version   string `mapstructure:"version"`
	UserAgent string `mapstructure:"user_agent"`
}

// CrawlConfig governs the reference crawl loop.
type CrawlConfig struct {
	StartURLs      []string `mapstructure:"start_urls"`
	AllowDomains   []string `mapstructure:"allow_domains"`
	MaxDepth       int      `mapstructure:"max_depth"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

// OpsConfig controls the metrics/health HTTP listener.
type OpsConfig struct {
	Port int `mapstructure:"port"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GRABBER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("run.version", "dev")
	v.SetDefault("run.user_agent", "webgrab/0.1")
	v.SetDefault("crawl.max_depth", 2)
	v.SetDefault("crawl.timeout_seconds", 60)
	v.SetDefault("ops.port", 9090)
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if len(c.Crawl.StartURLs) == 0 {
		return fmt.Errorf("crawl.start_urls must not be empty")
	}
	if c.Crawl.MaxDepth < 0 {
		return fmt.Errorf("crawl.max_depth must be >= 0")
	}
	if c.Crawl.TimeoutSeconds <= 0 {
		return fmt.Errorf("crawl.timeout_seconds must be > 0")
	}
	if c.Ops.Port <= 0 {
		return fmt.Errorf("ops.port must be > 0")
	}
	return nil
}
