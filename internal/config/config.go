package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/domaincheck/internal/probe"
)

type Config struct {
	// Probing
	Timeout       time.Duration `yaml:"-"`
	TimeoutS      int           `yaml:"timeout_seconds"`
	MaxRedirects  int           `yaml:"max_redirects"`
	Concurrency   int           `yaml:"max_concurrent"`
	RatePerSecond float64       `yaml:"rate_per_second"` // 0 = unthrottled
	UserAgent     string        `yaml:"user_agent"`
	Protocols     []string      `yaml:"protocols"`
	SkipVerify    bool          `yaml:"skip_tls_verify"`

	// Input (spreadsheet mode)
	Sheet        string `yaml:"sheet"`
	DomainColumn string `yaml:"domain_column"`

	// Ambient
	LogDir       string `yaml:"log_dir"`
	SlackWebhook string `yaml:"slack_webhook"`

	// API mode
	Addr          string   `yaml:"addr"`
	DatabaseURL   string   `yaml:"database_url"` // empty means in-memory store
	PublicAPIKeys []string `yaml:"public_api_keys"`
	AdminAPIKeys  []string `yaml:"admin_api_keys"`
}

func Default() Config {
	return Config{
		Timeout:      10 * time.Second,
		TimeoutS:     10,
		MaxRedirects: 5,
		Concurrency:  20,
		UserAgent:    probe.DefaultUserAgent,
		Protocols:    []string{"https", "http"},
		DomainColumn: "Domain",
		LogDir:       "logs",
		Addr:         "127.0.0.1:8080",
	}
}

// FromEnv builds a config from environment variables, falling back to the
// defaults above for anything unset.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("API_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.SlackWebhook = os.Getenv("SLACK_WEBHOOK")

	if v := os.Getenv("CHECK_TIMEOUT_S"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutS = n
		}
	}
	if v := os.Getenv("MAX_REDIRECTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxRedirects = n
		}
	}
	if v := os.Getenv("MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("RATE_PER_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.RatePerSecond = f
		}
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("PROTOCOL_ORDER"); v != "" {
		cfg.Protocols = splitList(v)
	}
	cfg.PublicAPIKeys = splitList(os.Getenv("PUBLIC_API_KEYS"))
	cfg.AdminAPIKeys = splitList(os.Getenv("ADMIN_API_KEYS"))

	cfg.Timeout = time.Duration(cfg.TimeoutS) * time.Second
	return cfg
}

// FromFile reads a YAML config file over the defaults. Unset fields keep
// their default values.
func FromFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TimeoutS <= 0 {
		cfg.TimeoutS = 10
	}
	cfg.Timeout = time.Duration(cfg.TimeoutS) * time.Second
	return cfg, nil
}

// ProberOptions maps the probing tunables onto the probe package.
func (c Config) ProberOptions() probe.ProberOptions {
	return probe.ProberOptions{
		Timeout:      c.Timeout,
		MaxRedirects: c.MaxRedirects,
		UserAgent:    c.UserAgent,
		Protocols:    c.Protocols,
		SkipVerify:   c.SkipVerify,
	}
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
