package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Scoring ScoringConfig
	Heatmap HeatmapConfig
	Cache   CacheConfig
	Sources SourcesConfig
	DB      DatabaseConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	RateLimit int // requests per second, global
}

// ScoringConfig carries the blend weights for the score engine. Weights
// must sum to 1.
type ScoringConfig struct {
	WeightLighting  float64
	WeightFootfall  float64
	WeightHazards   float64
	WeightProximity float64
}

type HeatmapConfig struct {
	MaxPoints     int
	BaseCellDeg   float64
	MinCellDeg    float64
	ReferenceZoom int
}

type CacheConfig struct {
	Freshness time.Duration // max age of a persisted score for cache serving
	MinPoints int           // fewer cached matches than this forces recomputation
}

type SourcesConfig struct {
	OverpassEnabled  bool
	OverpassURL      string
	OpenMeteoEnabled bool
	OpenMeteoURL     string
	MemoTTL          time.Duration
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("SERVER_HOST", "localhost"),
			Port:      getEnvInt("SERVER_PORT", 8080),
			RateLimit: getEnvInt("RATE_LIMIT_RPS", 5),
		},
		Scoring: ScoringConfig{
			WeightLighting:  getEnvFloat("WEIGHT_LIGHTING", 0.30),
			WeightFootfall:  getEnvFloat("WEIGHT_FOOTFALL", 0.25),
			WeightHazards:   getEnvFloat("WEIGHT_HAZARDS", 0.20),
			WeightProximity: getEnvFloat("WEIGHT_PROXIMITY", 0.25),
		},
		Heatmap: HeatmapConfig{
			MaxPoints:     getEnvInt("HEATMAP_MAX_POINTS", 200),
			BaseCellDeg:   getEnvFloat("HEATMAP_BASE_CELL_DEG", 0.01),
			MinCellDeg:    getEnvFloat("HEATMAP_MIN_CELL_DEG", 0.0005),
			ReferenceZoom: getEnvInt("HEATMAP_REFERENCE_ZOOM", 10),
		},
		Cache: CacheConfig{
			Freshness: getEnvDuration("CACHE_FRESHNESS", time.Hour),
			MinPoints: getEnvInt("CACHE_MIN_POINTS", 10),
		},
		Sources: SourcesConfig{
			OverpassEnabled:  getEnvBool("OVERPASS_ENABLED", false),
			OverpassURL:      getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
			OpenMeteoEnabled: getEnvBool("OPEN_METEO_ENABLED", false),
			OpenMeteoURL:     getEnv("OPEN_METEO_URL", "https://api.open-meteo.com/v1/forecast"),
			MemoTTL:          getEnvDuration("SOURCES_MEMO_TTL", 10*time.Minute),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/saferoute.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	sum := c.Scoring.WeightLighting + c.Scoring.WeightFootfall +
		c.Scoring.WeightHazards + c.Scoring.WeightProximity
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("scoring weights must sum to 1, got %v", sum)
	}
	if c.Scoring.WeightLighting < 0 || c.Scoring.WeightFootfall < 0 ||
		c.Scoring.WeightHazards < 0 || c.Scoring.WeightProximity < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}

	if c.Heatmap.MaxPoints < 4 {
		return fmt.Errorf("heatmap max points must be at least 4, got %d", c.Heatmap.MaxPoints)
	}
	if c.Heatmap.MinCellDeg <= 0 || c.Heatmap.BaseCellDeg < c.Heatmap.MinCellDeg {
		return fmt.Errorf("invalid heatmap cell sizes: base=%v min=%v",
			c.Heatmap.BaseCellDeg, c.Heatmap.MinCellDeg)
	}

	if c.Cache.Freshness < time.Minute {
		return fmt.Errorf("cache freshness must be at least 1 minute")
	}
	if c.Cache.MinPoints < 1 {
		return fmt.Errorf("cache min points must be at least 1, got %d", c.Cache.MinPoints)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
