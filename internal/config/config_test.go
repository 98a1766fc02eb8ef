package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("want 10s default timeout, got %s", cfg.Timeout)
	}
	if cfg.MaxRedirects != 5 || cfg.Concurrency != 20 {
		t.Fatalf("bad defaults: %+v", cfg)
	}
	if len(cfg.Protocols) != 2 || cfg.Protocols[0] != "https" || cfg.Protocols[1] != "http" {
		t.Fatalf("want https-then-http, got %v", cfg.Protocols)
	}
	if cfg.UserAgent == "" {
		t.Fatal("want a default user agent")
	}
}

func TestFromEnv_ParsesOverrides(t *testing.T) {
	t.Setenv("CHECK_TIMEOUT_S", "3")
	t.Setenv("MAX_REDIRECTS", "9")
	t.Setenv("MAX_CONCURRENT", "7")
	t.Setenv("RATE_PER_SEC", "2.5")
	t.Setenv("PROTOCOL_ORDER", "http, https")
	t.Setenv("PUBLIC_API_KEYS", "pub_a,pub_b")
	t.Setenv("ADMIN_API_KEYS", "adm_a")

	cfg := FromEnv()
	if cfg.Timeout != 3*time.Second || cfg.MaxRedirects != 9 || cfg.Concurrency != 7 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.RatePerSecond != 2.5 {
		t.Fatalf("want rate 2.5, got %f", cfg.RatePerSecond)
	}
	if len(cfg.Protocols) != 2 || cfg.Protocols[0] != "http" {
		t.Fatalf("protocol order not parsed: %v", cfg.Protocols)
	}
	if len(cfg.PublicAPIKeys) != 2 || len(cfg.AdminAPIKeys) != 1 {
		t.Fatalf("keys not parsed: %+v", cfg)
	}
}

func TestFromEnv_IgnoresGarbage(t *testing.T) {
	t.Setenv("CHECK_TIMEOUT_S", "zero")
	t.Setenv("MAX_CONCURRENT", "-4")
	cfg := FromEnv()
	if cfg.Timeout != 10*time.Second || cfg.Concurrency != 20 {
		t.Fatalf("garbage should keep defaults, got %+v", cfg)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.yaml")
	data := `
timeout_seconds: 4
max_concurrent: 5
sheet: Brands
domain_column: Host
protocols: [http]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != 4*time.Second || cfg.Concurrency != 5 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Sheet != "Brands" || cfg.DomainColumn != "Host" {
		t.Fatalf("input settings not applied: %+v", cfg)
	}
	if len(cfg.Protocols) != 1 || cfg.Protocols[0] != "http" {
		t.Fatalf("protocols not applied: %v", cfg.Protocols)
	}
	// untouched fields keep defaults
	if cfg.MaxRedirects != 5 {
		t.Fatalf("default lost: %+v", cfg)
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for a missing config file")
	}
}
