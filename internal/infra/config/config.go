package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Image   ImageConfig   `yaml:"image"`
	Deck    DeckConfig    `yaml:"deck"`
	Limiter LimiterConfig `yaml:"limiter"`
	Storage StorageConfig `yaml:"storage"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ImageConfig struct {
	TimeoutSeconds int   `yaml:"timeout_seconds"`
	MaxRetries     int   `yaml:"max_retries"`
	MaxBytes       int64 `yaml:"max_bytes"`
	CacheEntries   int   `yaml:"cache_entries"`
}

type DeckConfig struct {
	MaxSlides    int    `yaml:"max_slides"`
	DefaultTheme string `yaml:"default_theme"`
}

type LimiterConfig struct {
	MaxConcurrent     int     `yaml:"max_concurrent"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

type StorageConfig struct {
	Type     string `yaml:"type"`
	BasePath string `yaml:"base_path"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Image: ImageConfig{
			TimeoutSeconds: 15,
			MaxRetries:     3,
			MaxBytes:       10 * 1024 * 1024,
			CacheEntries:   64,
		},
		Deck: DeckConfig{
			MaxSlides:    100,
			DefaultTheme: "dialogue",
		},
		Limiter: LimiterConfig{
			MaxConcurrent:     4,
			RequestsPerSecond: 8,
		},
		Storage: StorageConfig{
			Type:     "local",
			BasePath: "./output",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("IMAGE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Image.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("IMAGE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Image.MaxRetries = n
		}
	}
	if v := os.Getenv("IMAGE_MAX_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Image.MaxBytes = n
		}
	}
	if v := os.Getenv("DECK_MAX_SLIDES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Deck.MaxSlides = n
		}
	}
	if v := os.Getenv("DECK_DEFAULT_THEME"); v != "" {
		cfg.Deck.DefaultTheme = v
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("STORAGE_BASE_PATH"); v != "" {
		cfg.Storage.BasePath = v
	}
}

func (c *Config) validate() error {
	if c.Image.TimeoutSeconds <= 0 {
		return fmt.Errorf("image.timeout_seconds must be positive")
	}
	if c.Image.MaxRetries < 0 {
		return fmt.Errorf("image.max_retries must not be negative")
	}
	if c.Image.MaxBytes <= 0 {
		return fmt.Errorf("image.max_bytes must be positive")
	}
	if c.Deck.MaxSlides <= 0 {
		return fmt.Errorf("deck.max_slides must be positive")
	}
	if c.Limiter.MaxConcurrent <= 0 {
		return fmt.Errorf("limiter.max_concurrent must be positive")
	}
	return nil
}
