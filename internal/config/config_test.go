package config

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Simplici0/dfm-advisor/internal/pricing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_PATH", "PORT", "APP_ENV", "LOG_LEVEL", "MAX_BODY_BYTES", "MATERIAL_CACHE_SIZE",
		"LABOR_HOURLY_RATE", "MACHINE_HOURLY_RATE", "SETUP_COST", "BATCH_SIZE", "REMOVAL_RATE_CM3_MIN",
	} {
		t.Setenv(key, "")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load(zap.NewNop())

	if cfg.DBPath != defaultDBPath || cfg.Port != defaultPort || cfg.Env != defaultEnv || cfg.LogLevel != defaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes || cfg.MaterialCacheSize != defaultMaterialCacheSize {
		t.Fatalf("unexpected limits: %+v", cfg)
	}
	if cfg.Rates != pricing.DefaultRates() {
		t.Fatalf("rates = %+v, want %+v", cfg.Rates, pricing.DefaultRates())
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev environment by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("BATCH_SIZE", "250")
	t.Setenv("LABOR_HOURLY_RATE", "75.5")

	cfg := Load(zap.NewNop())

	if cfg.Port != "9090" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.IsDev() {
		t.Fatalf("production should not be dev")
	}
	if cfg.Rates.BatchSize != 250 || cfg.Rates.LaborHourlyRate != 75.5 {
		t.Fatalf("unexpected rates %+v", cfg.Rates)
	}
}

func TestLoad_InvalidNumberFallsBackAndWarns(t *testing.T) {
	clearEnv(t)
	t.Setenv("SETUP_COST", "lots")
	t.Setenv("BATCH_SIZE", "-4")
	t.Setenv("MAX_BODY_BYTES", "1e30")
	t.Setenv("MATERIAL_CACHE_SIZE", "2.9")

	core, logs := observer.New(zap.WarnLevel)
	cfg := Load(zap.New(core))

	if cfg.Rates.SetupCost != 150 || cfg.Rates.BatchSize != 100 {
		t.Fatalf("expected defaults for invalid values, got %+v", cfg.Rates)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes || cfg.MaterialCacheSize != defaultMaterialCacheSize {
		t.Fatalf("expected default limits, got MaxBodyBytes=%d MaterialCacheSize=%d", cfg.MaxBodyBytes, cfg.MaterialCacheSize)
	}
	if got := logs.FilterMessage("invalid numeric config value, using default").Len(); got != 4 {
		t.Fatalf("expected 4 warnings, got %d", got)
	}
}

func TestLoad_IntegerLimits(t *testing.T) {
	tests := []struct {
		name      string
		bodyBytes string
		cacheSize string
		wantBody  int64
		wantCache int
	}{
		{"valid", "2048", "16", 2048, 16},
		{"zero", "0", "0", defaultMaxBodyBytes, defaultMaterialCacheSize},
		{"negative", "-1", "-8", defaultMaxBodyBytes, defaultMaterialCacheSize},
		{"overflow", "99999999999999999999", "9999999999", defaultMaxBodyBytes, defaultMaterialCacheSize},
		{"fraction", "10.5", "2.9", defaultMaxBodyBytes, defaultMaterialCacheSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("MAX_BODY_BYTES", tt.bodyBytes)
			t.Setenv("MATERIAL_CACHE_SIZE", tt.cacheSize)

			cfg := Load(zap.NewNop())

			if cfg.MaxBodyBytes != tt.wantBody || cfg.MaterialCacheSize != tt.wantCache {
				t.Fatalf("MaxBodyBytes=%d MaterialCacheSize=%d, want %d %d", cfg.MaxBodyBytes, cfg.MaterialCacheSize, tt.wantBody, tt.wantCache)
			}
		})
	}
}
