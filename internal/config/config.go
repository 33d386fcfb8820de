package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DOFConfig controls the gazette client.
type DOFConfig struct {
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	MaxRetries    uint64
	PrefetchCount int
}

// CacheConfig controls the publication cache.
type CacheConfig struct {
	Enabled bool
	Path    string
}

// TemplatesConfig controls the skeleton overlay.
type TemplatesConfig struct {
	OverlayDir   string
	WatchOverlay bool
}

type Config struct {
	LogLevel  string
	LogFormat string
	DOF       DOFConfig
	Cache     CacheConfig
	Templates TemplatesConfig
}

// Load builds the defaults and applies LEXMEX_* environment overrides. A
// local .env file is picked up first when present. The binary takes no
// flags.
func Load() *Config {
	godotenv.Load()

	homeDir, _ := os.UserHomeDir()
	lexmexDir := filepath.Join(homeDir, ".lexmex")

	cfg := &Config{
		LogLevel:  "info",
		LogFormat: "text",
		DOF: DOFConfig{
			BaseURL:       "https://www.dof.gob.mx",
			UserAgent:     "",
			Timeout:       30 * time.Second,
			MaxRetries:    3,
			PrefetchCount: 0,
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    filepath.Join(lexmexDir, "dof.db"),
		},
		Templates: TemplatesConfig{
			OverlayDir:   filepath.Join(lexmexDir, "templates"),
			WatchOverlay: false,
		},
	}

	applyEnv(cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LEXMEX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LEXMEX_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("LEXMEX_DOF_BASE_URL"); v != "" {
		cfg.DOF.BaseURL = v
	}
	if v := os.Getenv("LEXMEX_DOF_USER_AGENT"); v != "" {
		cfg.DOF.UserAgent = v
	}
	if v := os.Getenv("LEXMEX_DOF_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DOF.Timeout = d
		}
	}
	if v := os.Getenv("LEXMEX_DOF_MAX_RETRIES"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.DOF.MaxRetries = n
		}
	}
	if v := os.Getenv("LEXMEX_DOF_PREFETCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.DOF.PrefetchCount = n
		}
	}
	if v := os.Getenv("LEXMEX_CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("LEXMEX_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("LEXMEX_TEMPLATES_DIR"); v != "" {
		cfg.Templates.OverlayDir = v
	}
	if v := os.Getenv("LEXMEX_TEMPLATES_WATCH"); v != "" {
		cfg.Templates.WatchOverlay = v == "true" || v == "1"
	}
}
