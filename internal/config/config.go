package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Simplici0/dfm-advisor/internal/pricing"
)

const (
	defaultDBPath            = "./dev.db"
	defaultPort              = "8080"
	defaultEnv               = "dev"
	defaultLogLevel          = "info"
	defaultMaxBodyBytes      = 1 << 20
	defaultMaterialCacheSize = 128
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath            string
	Port              string
	Env               string
	LogLevel          string
	MaxBodyBytes      int64
	MaterialCacheSize int
	Rates             pricing.Rates
}

// IsDev reports whether the server runs in a local development environment.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv || c.Env == "local"
}

// Load reads environment variables and returns a populated Config. Invalid
// numeric values are reported on logger and replaced by their defaults.
func Load(logger *zap.Logger) Config {
	// Best-effort: load local dev environment variables.
	// Production should use real env injection.
	if err := loadDotEnv(".env"); err != nil {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	defaults := pricing.DefaultRates()
	env := envLoader{logger: logger}

	cfg := Config{
		DBPath:            env.str("DB_PATH", defaultDBPath),
		Port:              env.str("PORT", defaultPort),
		Env:               strings.ToLower(env.str("APP_ENV", defaultEnv)),
		LogLevel:          strings.ToLower(env.str("LOG_LEVEL", defaultLogLevel)),
		MaxBodyBytes:      env.int("MAX_BODY_BYTES", defaultMaxBodyBytes, math.MaxInt64),
		MaterialCacheSize: int(env.int("MATERIAL_CACHE_SIZE", defaultMaterialCacheSize, math.MaxInt32)),
		Rates: pricing.Rates{
			LaborHourlyRate:   env.float("LABOR_HOURLY_RATE", defaults.LaborHourlyRate),
			MachineHourlyRate: env.float("MACHINE_HOURLY_RATE", defaults.MachineHourlyRate),
			SetupCost:         env.float("SETUP_COST", defaults.SetupCost),
			BatchSize:         env.float("BATCH_SIZE", defaults.BatchSize),
			RemovalRateCm3Min: env.float("REMOVAL_RATE_CM3_MIN", defaults.RemovalRateCm3Min),
		},
	}

	cfg.Port = strings.TrimPrefix(cfg.Port, ":")

	return cfg
}

type envLoader struct {
	logger *zap.Logger
}

func (e envLoader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// float parses a non-negative number, falling back to def.
func (e envLoader) float(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		e.logger.Warn("invalid numeric config value, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Float64("default", def),
		)
		return def
	}
	return v
}

// int parses a positive integer no larger than limit, falling back to def.
func (e envLoader) int(key string, def, limit int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 || v > limit {
		e.logger.Warn("invalid numeric config value, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Int64("default", def),
		)
		return def
	}
	return v
}
