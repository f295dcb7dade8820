package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeDotEnv(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	return path
}

func TestLoadDotEnv_ReadsProjectKeys(t *testing.T) {
	clearEnv(t)

	path := writeDotEnv(t, t.TempDir(), `
# local development

PORT=9090
export DB_PATH=./parts.db
APP_ENV="production"
LOG_LEVEL='debug'
# shop rate
MACHINE_HOURLY_RATE=95
`)
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	want := map[string]string{
		"PORT":                "9090",
		"DB_PATH":             "./parts.db",
		"APP_ENV":             "production",
		"LOG_LEVEL":           "debug",
		"MACHINE_HOURLY_RATE": "95",
	}
	for key, value := range want {
		if got := os.Getenv(key); got != value {
			t.Fatalf("%s=%q, want %q", key, got, value)
		}
	}
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/var/lib/dfm/advisor.db")

	path := writeDotEnv(t, t.TempDir(), "DB_PATH=./dev.db\nPORT=9090\n")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("DB_PATH"); got != "/var/lib/dfm/advisor.db" {
		t.Fatalf("DB_PATH=%q, want the injected value", got)
	}
	if got := os.Getenv("PORT"); got != "9090" {
		t.Fatalf("PORT=%q, want %q", got, "9090")
	}
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
}

func TestLoad_ReadsDotEnvFromWorkingDirectory(t *testing.T) {
	clearEnv(t)

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	writeDotEnv(t, dir, "PORT=:7070\nSETUP_COST=300\nMATERIAL_CACHE_SIZE=8\n")

	cfg := Load(zap.NewNop())

	if cfg.Port != "7070" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "7070")
	}
	if cfg.Rates.SetupCost != 300 || cfg.MaterialCacheSize != 8 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
