package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.LogLevel != "info" {
		t.Errorf("default log level: %s", cfg.LogLevel)
	}
	if cfg.DOF.BaseURL != "https://www.dof.gob.mx" {
		t.Errorf("default base URL: %s", cfg.DOF.BaseURL)
	}
	if cfg.DOF.Timeout != 30*time.Second {
		t.Errorf("default timeout: %s", cfg.DOF.Timeout)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache must be enabled by default")
	}
	if cfg.Templates.WatchOverlay {
		t.Error("overlay watching must be off by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LEXMEX_LOG_LEVEL", "debug")
	t.Setenv("LEXMEX_DOF_BASE_URL", "http://localhost:8080")
	t.Setenv("LEXMEX_DOF_TIMEOUT", "5s")
	t.Setenv("LEXMEX_DOF_MAX_RETRIES", "7")
	t.Setenv("LEXMEX_CACHE_ENABLED", "false")
	t.Setenv("LEXMEX_CACHE_PATH", "/tmp/lexmex-test/dof.db")
	t.Setenv("LEXMEX_TEMPLATES_WATCH", "1")

	cfg := Load()

	if cfg.LogLevel != "debug" {
		t.Errorf("log level override: %s", cfg.LogLevel)
	}
	if cfg.DOF.BaseURL != "http://localhost:8080" {
		t.Errorf("base URL override: %s", cfg.DOF.BaseURL)
	}
	if cfg.DOF.Timeout != 5*time.Second {
		t.Errorf("timeout override: %s", cfg.DOF.Timeout)
	}
	if cfg.DOF.MaxRetries != 7 {
		t.Errorf("max retries override: %d", cfg.DOF.MaxRetries)
	}
	if cfg.Cache.Enabled {
		t.Error("cache enabled override not applied")
	}
	if cfg.Cache.Path != "/tmp/lexmex-test/dof.db" {
		t.Errorf("cache path override: %s", cfg.Cache.Path)
	}
	if !cfg.Templates.WatchOverlay {
		t.Error("watch override not applied")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("LEXMEX_DOF_TIMEOUT", "soon")
	t.Setenv("LEXMEX_DOF_MAX_RETRIES", "many")
	t.Setenv("LEXMEX_DOF_PREFETCH", "-5")

	cfg := Load()

	if cfg.DOF.Timeout != 30*time.Second {
		t.Errorf("malformed timeout must keep the default, got %s", cfg.DOF.Timeout)
	}
	if cfg.DOF.MaxRetries != 3 {
		t.Errorf("malformed retries must keep the default, got %d", cfg.DOF.MaxRetries)
	}
	if cfg.DOF.PrefetchCount != 0 {
		t.Errorf("negative prefetch must keep the default, got %d", cfg.DOF.PrefetchCount)
	}
}
